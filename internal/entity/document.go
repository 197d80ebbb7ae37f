package entity

import "image"

// UploadedDocument is one uploaded RFQ artifact: a specification PDF, a
// drawing PDF, or a still image. Immutable after creation; discarded when the
// session ends.
type UploadedDocument struct {
	Name   string
	Format string // constants.PDF | constants.IMAGE
	Data   []byte
}

// PageImage is one rasterized PDF page, or a directly uploaded image.
// Ordinal is 1-based and follows physical page order.
type PageImage struct {
	Ordinal int
	Image   image.Image
}
