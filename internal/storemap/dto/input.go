package dto

import "io"

type CreateMapInput struct {
	Name      string
	ImagePath string
}

type UploadMapInput struct {
	Name  string
	Image io.Reader // PNG, JPEG or GIF
}
