package genai

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
)

// GenerateAvatar restyles a photo into an avatar. It returns the image bytes
// and their content type.
func (c *Client) GenerateAvatar(ctx context.Context, image []byte, contentType, style string) ([]byte, string, error) {
	if contentType == "" {
		contentType = http.DetectContentType(image)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "", fmt.Errorf("avatar source is %s, not an image", contentType)
	}
	if strings.TrimSpace(style) == "" {
		style = "clean flat illustration"
	}

	user, err := render("avatar", c.prompts.Avatar.User, struct{ Style string }{style})
	if err != nil {
		return nil, "", err
	}
	dataURL := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(image)

	choice, err := c.complete(ctx, chatCompletionsRequest{
		Model:      c.imageModel,
		Modalities: []string{"image", "text"},
		Messages: []message{
			{Role: "system", Content: c.prompts.Avatar.System},
			{Role: "user", Content: []contentPart{
				{Type: "text", Text: user},
				{Type: "image_url", ImageURL: &imageURL{URL: dataURL}},
			}},
		},
	})
	if err != nil {
		return nil, "", err
	}
	if len(choice.Message.Images) == 0 {
		return nil, "", ErrEmptyResult
	}
	return DecodeDataURL(choice.Message.Images[0].ImageURL.URL)
}

// DecodeDataURL decodes a base64 data URL into its bytes and media type.
func DecodeDataURL(u string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(u, "data:")
	if !ok {
		return nil, "", fmt.Errorf("not a data url")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", fmt.Errorf("malformed data url")
	}
	mediaType, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return nil, "", fmt.Errorf("data url is not base64")
	}
	b, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("decoding data url: %w", err)
	}
	if mediaType == "" {
		mediaType = http.DetectContentType(b)
	}
	return b, mediaType, nil
}
