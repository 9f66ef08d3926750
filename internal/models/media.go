// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Media is a file attached to an item. The file itself lives in object
// storage; only its metadata is kept with the item.
type Media struct {
	FileName     string `json:"fileName"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	ContentType  string `json:"contentType"`
	SizeBytes    int64  `json:"sizeBytes"`
}

// MediaList is the ordered collection of an item's media, stored as JSON.
type MediaList []Media

// Value implements driver.Valuer. A nil list is stored as an empty array.
func (l MediaList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	b, err := json.Marshal([]Media(l))
	if err != nil {
		return nil, fmt.Errorf("encode medias: %w", err)
	}
	return b, nil
}

// Scan implements sql.Scanner for jsonb/text columns.
func (l *MediaList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = MediaList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("scan medias: unsupported type %T", src)
	}

	var out []Media
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("decode medias: %w", err)
	}
	if out == nil {
		out = []Media{}
	}
	*l = out
	return nil
}
