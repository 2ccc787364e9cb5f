package storage

import (
	"context"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicLinkRoundTrip(t *testing.T) {
	a := &awsS3{bucket: "recipes", region: "ap-southeast-1"}

	link := a.GetPublicLinkKey("recipes/abc.png")
	assert.Equal(t, "https://recipes.s3.ap-southeast-1.amazonaws.com/recipes/abc.png", link)
	assert.Equal(t, "recipes/abc.png", a.GetObjectKeyFromLink(link))
	assert.Empty(t, a.GetObjectKeyFromLink("https://example.com/abc.png"))
}

func TestObjectKeyFor(t *testing.T) {
	assert.Equal(t, "recipes/abc.jpg", objectKeyFor("/recipes/", "abc", "Photo.JPG"))
	assert.Equal(t, "abc", objectKeyFor("", "abc", "noext"))
}

func TestUploadFileRejectsType(t *testing.T) {
	a := &awsS3{bucket: "recipes", region: "ap-southeast-1"}
	header := &multipart.FileHeader{Filename: "notes.txt", Header: textproto.MIMEHeader{"Content-Type": {"text/plain"}}}

	_, err := a.UploadFile(context.Background(), "abc", header, "recipes", AllowImage...)
	assert.ErrorIs(t, err, ErrFileTypeNotAllowed)
}
