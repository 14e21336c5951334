package mailbox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plainMessage = "From: Jane Doe <jane@example.com>\r\n" +
	"To: claims@coverly.com\r\n" +
	"Subject: Car accident claim\r\n" +
	"Content-Type: text/plain\r\n" +
	"\r\n" +
	"My car was hit in the parking lot. Estimate is $2500.\r\n"

const multipartMessage = "From: Jane Doe <jane@example.com>\r\n" +
	"To: claims@coverly.com\r\n" +
	"Subject: Claim with photos\r\n" +
	"Content-Type: multipart/mixed; boundary=BOUNDARY\r\n" +
	"\r\n" +
	"--BOUNDARY\r\n" +
	"Content-Type: text/plain\r\n" +
	"\r\n" +
	"See the attached photo and estimate.\r\n" +
	"--BOUNDARY\r\n" +
	"Content-Type: image/jpeg\r\n" +
	"Content-Disposition: attachment; filename=\"photo.jpg\"\r\n" +
	"\r\n" +
	"jpegbytes\r\n" +
	"--BOUNDARY\r\n" +
	"Content-Type: application/pdf\r\n" +
	"Content-Disposition: attachment; filename=\"estimate.pdf\"\r\n" +
	"\r\n" +
	"pdfbytes\r\n" +
	"--BOUNDARY--\r\n"

const headerOnlyMessage = "From: Jane Doe <jane@example.com>\r\n" +
	"To: claims@coverly.com\r\n" +
	"Content-Type: text/plain\r\n" +
	"\r\n" +
	"\r\n"

func TestExtractMail_PlainText(t *testing.T) {
	m, err := ExtractMail(strings.NewReader(plainMessage))
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", m.Sender)
	assert.Equal(t, "Car accident claim", m.Subject)
	assert.Equal(t, "My car was hit in the parking lot. Estimate is $2500.", m.Body)
	assert.Empty(t, m.Attachments)
}

func TestExtractMail_MultipartWithAttachments(t *testing.T) {
	m, err := ExtractMail(strings.NewReader(multipartMessage))
	require.NoError(t, err)

	assert.Equal(t, "See the attached photo and estimate.", m.Body)
	require.Len(t, m.Attachments, 2)
	assert.Equal(t, "photo.jpg", m.Attachments[0].Filename)
	assert.Equal(t, []byte("jpegbytes"), m.Attachments[0].Data)
	assert.Equal(t, "estimate.pdf", m.Attachments[1].Filename)
	assert.Equal(t, []byte("pdfbytes"), m.Attachments[1].Data)
}

func TestExtractMail_MissingSubjectAndBody(t *testing.T) {
	m, err := ExtractMail(strings.NewReader(headerOnlyMessage))
	require.NoError(t, err)

	assert.Equal(t, "No Subject", m.Subject)
	assert.Equal(t, NoContentSentinel, m.Body)
}
