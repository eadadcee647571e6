package models

import (
	"time"

	"luggagebill/internal/domain"
)

type BagSize string

const (
	BagSizeSmall  BagSize = "S"
	BagSizeMedium BagSize = "M"
	BagSizeLarge  BagSize = "L"
)

func (s BagSize) Valid() bool {
	switch s {
	case BagSizeSmall, BagSizeMedium, BagSizeLarge:
		return true
	default:
		return false
	}
}

// Label is the human readable size name.
func (s BagSize) Label() string {
	switch s {
	case BagSizeSmall:
		return "Small"
	case BagSizeMedium:
		return "Medium"
	case BagSizeLarge:
		return "Large"
	default:
		return string(s)
	}
}

var BagSizes = []BagSize{BagSizeSmall, BagSizeMedium, BagSizeLarge}

type BagType struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Size        BagSize   `json:"size"`
	Description *string   `json:"description,omitempty"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
}

func (b *BagType) Normalize() {
	b.Name = normalize(b.Name)
	b.Size = BagSize(normalize(string(b.Size)))
	if b.Description != nil {
		d := normalize(*b.Description)
		if d == "" {
			b.Description = nil
		} else {
			b.Description = &d
		}
	}
}

func (b BagType) Validate() error {
	if err := requireText("name", b.Name, 50); err != nil {
		return err
	}
	if !b.Size.Valid() {
		return domain.ValidationError{Field: "size", Msg: "must be one of S, M, L"}
	}
	return nil
}

func (b BagType) String() string {
	return b.Name + " - " + b.Size.Label()
}
