package sambanova

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"os"

	// Registered so image.DecodeConfig can recognize the common web formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// imageDataURI reads the file at path, verifies it decodes as an image, and
// returns a base64 data URI with the detected MIME type.
//
// Both failure modes (unreadable path, undecodable bytes) are validation
// errors: they must surface before any network call.
func imageDataURI(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", validationErrorf("image file not found: %s: %v", path, err)
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", validationErrorf("file is not a decodable image: %s: %v", path, err)
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf("data:image/%s;base64,%s", format, encoded), nil
}
