/*
 * Copyright 2026 the tp-api authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package models defines the canonical record shapes every park adapter
// must emit. Vendor-specific wire formats are mapped onto these types
// inside the individual adapter packages and never leak past them.
package models

import (
	"context"
	"time"
)

// Status is the canonical operating state shared by all adapters.
type Status string

const (
	StatusOperating     Status = "operating"
	StatusClosed        Status = "closed"
	StatusDown          Status = "down"
	StatusRefurbishment Status = "refurbishment"
	// StatusFastPassFull marks a virtual-queue lane whose current
	// reservation contingent is exhausted but may reopen later today.
	StatusFastPassFull Status = "fastpass-temporarily-full"
	// StatusFastPassFinished marks a virtual-queue lane that handed out
	// its last reservations for the day.
	StatusFastPassFinished Status = "fastpass-finished"
)

// Kind partitions points of interest by what they are.
type Kind string

const (
	KindRide       Kind = "ride"
	KindSight      Kind = "sight"
	KindRestaurant Kind = "restaurant"
	KindShop       Kind = "shop"
	KindService    Kind = "service"
)

// Location pins a POI on the park map. Area is the human-readable
// themed-area name; it stays empty when the vendor code is unknown.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Area      string  `json:"area,omitempty"`
}

// Restrictions carries rider admission limits. Every field is optional;
// a nil pointer means the vendor declared no such limit, which is
// different from a limit of zero.
type Restrictions struct {
	MinHeight            *int `json:"minHeight,omitempty"`
	MaxHeight            *int `json:"maxHeight,omitempty"`
	MinAge               *int `json:"minAge,omitempty"`
	MaxAge               *int `json:"maxAge,omitempty"`
	MinHeightAccompanied *int `json:"minHeightAccompanied,omitempty"`
	MinAgeAccompanied    *int `json:"minAgeAccompanied,omitempty"`
}

// Meta groups the descriptive fields of a POI.
type Meta struct {
	Description      string            `json:"description,omitempty"`
	ShortDescription string            `json:"short_description,omitempty"`
	Type             Kind              `json:"type"`
	Restrictions     *Restrictions     `json:"restrictions,omitempty"`
	Tags             map[string]string `json:"tags,omitempty"`
}

// FastPass describes the virtual-queue lane attached to a queue record.
type FastPass struct {
	ReturnTime  string `json:"returnTime,omitempty"`
	IsVirtQueue bool   `json:"isVirtQueue"`
	Parent      string `json:"parent,omitempty"`
}

// POI is the normalized point-of-interest record built from raw vendor
// entities. Records are immutable within one cache epoch and keyed by
// the vendor code.
type POI struct {
	Code        int      `json:"code"`
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Kind        Kind     `json:"kind"`
	Location    Location `json:"location"`
	Meta        Meta     `json:"meta"`
	IsVirtQueue bool     `json:"isVirtQueue,omitempty"`
	// Parent names the base ride a virtual-queue entry belongs to.
	Parent      string `json:"parent,omitempty"`
	HasFastPass bool   `json:"hasFastPass,omitempty"`
}

// QueueRecord is the uniform queue-fetch output contract.
type QueueRecord struct {
	Name     string    `json:"name"`
	ID       string    `json:"id"`
	WaitTime int       `json:"waitTime"`
	Status   Status    `json:"status"`
	Active   bool      `json:"active"`
	Location Location  `json:"location"`
	Meta     Meta      `json:"meta"`
	FastPass *FastPass `json:"fastPass,omitempty"`
}

// ScheduleType distinguishes regular operating windows from vendor
// specials. Adapters that publish explicit closed days use TypeClosed;
// this family emits no record at all for closed days.
type ScheduleType string

const (
	ScheduleTypeOperating  ScheduleType = "Operating"
	ScheduleTypeExtraHours ScheduleType = "Extra Hours"
	ScheduleTypeClosed     ScheduleType = "Closed"
)

// ScheduleRecord is the uniform schedule-fetch output contract. The
// opening and closing instants carry the park's local timezone; Date is
// the calendar day they belong to, formatted 2006-01-02.
type ScheduleRecord struct {
	OpeningTime time.Time    `json:"openingTime"`
	ClosingTime time.Time    `json:"closingTime"`
	Date        string       `json:"date"`
	Type        ScheduleType `json:"type"`
	Description string       `json:"description,omitempty"`
}

// ParkAdapter is the capability surface a concrete park exposes to
// downstream consumers. Implementations compose the shared credential
// pipeline, cache and schedule builder instead of inheriting them.
type ParkAdapter interface {
	GetQueues(ctx context.Context, locale string) ([]QueueRecord, error)
	GetSchedules(ctx context.Context) ([]ScheduleRecord, error)
	GetPOIs(ctx context.Context, kind Kind, locale string) ([]POI, error)
}
