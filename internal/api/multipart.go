package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"

	"github.com/inkpost/inkpost-go/internal/domain/blog"
	apperrors "github.com/inkpost/inkpost-go/internal/errors"
)

// buildPostForm assembles the multipart body for image-bearing post
// submissions: title, content, stringified published flag, and an optional
// binary image part. When input.ImagePath is empty no image field is written
// at all; sending an empty part could make the remote system clear an
// existing image.
func buildPostForm(input blog.PostInput) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"title":     input.Title,
		"content":   input.Content,
		"published": strconv.FormatBool(input.Published),
	}
	for _, name := range []string{"title", "content", "published"} {
		if err := writer.WriteField(name, fields[name]); err != nil {
			return nil, "", apperrors.Wrap(err, apperrors.ErrCodeInternal, fmt.Sprintf("write form field %s", name))
		}
	}

	if input.ImagePath != "" {
		if err := writeImagePart(writer, input.ImagePath); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "finalize multipart body")
	}

	return &buf, writer.FormDataContentType(), nil
}

func writeImagePart(writer *multipart.Writer, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "open image file")
	}
	defer file.Close() //nolint:errcheck // read-only handle

	part, err := writer.CreateFormFile("image", filepath.Base(path))
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "create image form part")
	}
	if _, err := io.Copy(part, file); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "copy image into form")
	}
	return nil
}
