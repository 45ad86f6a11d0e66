package domain

import (
	"errors"
)

var (
	MessageSuccessOpenScreen   = "screen opened successfully"
	MessageSuccessGetScreen    = "success get screen"
	MessageSuccessScroll       = "viewport updated successfully"
	MessageSuccessCloseScreen  = "screen closed successfully"
	MessageAddNotAvailable     = "adding recipes is not available yet"
	MessageFailedOpenScreen    = "failed to open screen"
	MessageFailedGetScreen     = "failed to get screen"
	MessageFailedScroll        = "failed to update viewport"
	MessageFailedCloseScreen   = "failed to close screen"
	MessageFailedAddCollection = "failed to trigger add"

	ErrScreenNotFound       = errors.New("screen not found")
	ErrCollectionNotFound   = errors.New("collection not found")
	ErrDuplicateRecipeKey   = errors.New("duplicate recipe id in collection")
	ErrViewportOutOfRange   = errors.New("viewport index out of range")
	ErrViewportNotAscending = errors.New("visible indices must be ascending")
	ErrViewportMismatch     = errors.New("first visible index does not match visible indices")
)

type (
	ViewportRequest struct {
		FirstVisibleIndex int   `json:"first_visible_index" validate:"min=0"`
		VisibleIndices    []int `json:"visible_indices" validate:"dive,min=0"`
	}

	CardResponse struct {
		Key      int    `json:"key"`
		Name     string `json:"name"`
		ImageURL string `json:"image_url,omitempty"`
		Favorite bool   `json:"favorite"`
	}

	IndicatorResponse struct {
		Edge            string `json:"edge"`
		Glyph           string `json:"glyph"`
		RotationDegrees int    `json:"rotation_degrees"`
		Visible         bool   `json:"visible"`
	}

	AddAffordanceResponse struct {
		Label   string `json:"label"`
		Enabled bool   `json:"enabled"`
	}

	CollectionResponse struct {
		Name     string                `json:"name"`
		Category string                `json:"category"`
		Add      AddAffordanceResponse `json:"add"`
		Cards    []CardResponse        `json:"cards"`
		Leading  IndicatorResponse     `json:"leading"`
		Trailing IndicatorResponse     `json:"trailing"`
	}

	ScreenResponse struct {
		ID          string               `json:"id"`
		Title       string               `json:"title"`
		Version     uint64               `json:"version"`
		Collections []CollectionResponse `json:"collections"`
	}

	ScrollResponse struct {
		Redraw     bool               `json:"redraw"`
		Version    uint64             `json:"version"`
		Collection CollectionResponse `json:"collection"`
	}
)
