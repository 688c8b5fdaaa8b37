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

package europapark

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/AlexVV13/tp-api-sub000/pkg/cache"
	"github.com/AlexVV13/tp-api-sub000/pkg/models"
)

const (
	// virtQueuePrefix marks a virtual-queue lane; the remainder of the
	// name is the base ride it belongs to.
	virtQueuePrefix = "VirtualLine: "
	// queuePointerPrefix marks internal routing artifacts that exist in
	// upstream data only to point queues at their POI. Never surfaced.
	queuePointerPrefix = "Queue - "
)

// areaNames maps the vendor's integer area codes onto themed-realm
// labels. Codes outside the table leave the area empty; an unknown
// realm is not an error.
var areaNames = map[int]string{
	10: "Germany",
	11: "Italy",
	12: "France",
	13: "Scandinavia",
	14: "England",
	15: "Ireland",
	16: "Russia",
	17: "Spain",
	18: "Greece",
	19: "Switzerland",
	20: "Netherlands",
	21: "Luxembourg",
	22: "Austria",
	23: "Portugal",
	24: "Iceland",
	25: "Grimm's Enchanted Forest",
	26: "Adventure Land",
	27: "Kingdom of the Minimoys",
	28: "Rulantica",
}

// kindForType maps the vendor's declared entity types onto canonical
// kinds. Unlisted types are skipped by the builder.
var kindForType = map[string]models.Kind{
	"attraction": models.KindRide,
	"sight":      models.KindSight,
	"gastronomy": models.KindRestaurant,
	"shopping":   models.KindShop,
	"service":    models.KindService,
}

// Attribute keys the vendor declares on rides. Extracted into tags by
// name; anything else in the list is ignored.
var rideAttributeKeys = []string{
	"producer",
	"opening",
	"capacity",
	"duration",
	"theoretical-capacity",
	"g-force",
	"max-speed",
	"height",
}

// attributeLookup is a typed view over a vendor attribute list,
// replacing repeated linear scans over key/value pairs.
type attributeLookup map[string]string

func newAttributeLookup(attrs []poiAttribute) attributeLookup {
	l := make(attributeLookup, len(attrs))
	for _, attr := range attrs {
		l[attr.Key] = attr.Value
	}

	return l
}

// get returns the attribute value and whether it was declared at all.
func (l attributeLookup) get(key string) (string, bool) {
	v, ok := l[key]
	return v, ok
}

// fetchPOIs retrieves the raw POI listing for one locale.
func (a *Adapter) fetchPOIs(ctx context.Context, token, locale string) ([]poiEntity, error) {
	url := fmt.Sprintf("%s/api/v1/pois/%s", a.cfg.BaseURL, locale)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", token)
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %d, response: %s", errUnexpectedStatusCode,
			resp.StatusCode, string(bodyBytes))
	}

	var poiResp poiResponse

	if err := json.NewDecoder(resp.Body).Decode(&poiResp); err != nil {
		return nil, err
	}

	return poiResp.POIs, nil
}

// buildPOIs normalizes the raw listing into canonical records of one
// kind, keyed by vendor code. Results are cached per kind and locale
// under the configured POI TTL.
func (a *Adapter) buildPOIs(ctx context.Context, kind models.Kind, locale string) (map[int]models.POI, error) {
	key := fmt.Sprintf("%s/%s", kind, locale)

	return cache.Wrap(ctx, a.store, scopePOI, key, a.cfg.poiTTL(),
		func(ctx context.Context) (map[int]models.POI, error) {
			token, err := a.getAccessToken(ctx)
			if err != nil {
				return nil, err
			}

			entities, err := a.fetchPOIs(ctx, token, locale)
			if err != nil {
				return nil, err
			}

			return a.normalize(entities, kind), nil
		})
}

func (a *Adapter) normalize(entities []poiEntity, kind models.Kind) map[int]models.POI {
	out := make(map[int]models.POI)

	for i := range entities {
		entity := &entities[i]

		if kindForType[entity.Type] != kind {
			continue
		}

		if !a.inScope(entity.Scopes) {
			continue
		}

		// Queue pointers are upstream routing artifacts, never POIs.
		if strings.HasPrefix(entity.Name, queuePointerPrefix) {
			continue
		}

		poi := a.normalizeOne(entity, kind)
		out[poi.Code] = poi
	}

	return out
}

func (a *Adapter) normalizeOne(entity *poiEntity, kind models.Kind) models.POI {
	poi := models.POI{
		Code: entity.Code,
		ID:   fmt.Sprintf("%s_%d", a.instance, entity.ID),
		Name: entity.Name,
		Kind: kind,
		Location: models.Location{
			Latitude:  entity.Latitude,
			Longitude: entity.Longitude,
			Area:      areaNames[entity.AreaID],
		},
		Meta: models.Meta{
			Description:      entity.Description,
			ShortDescription: entity.Excerpt,
			Type:             kind,
			Restrictions:     restrictionsOf(entity),
		},
	}

	if kind == models.KindRide {
		lookup := newAttributeLookup(entity.Attributes)
		tags := make(map[string]string)

		for _, key := range rideAttributeKeys {
			if v, ok := lookup.get(key); ok {
				tags[key] = v
			}
		}

		if len(tags) > 0 {
			poi.Meta.Tags = tags
		}
	}

	if strings.HasPrefix(entity.Name, virtQueuePrefix) {
		poi.IsVirtQueue = true
		poi.Parent = entity.Name[len(virtQueuePrefix):]
		poi.HasFastPass = true
	}

	return poi
}

// restrictionsOf picks up whichever limits the vendor declared. Absent
// fields stay nil; nothing is defaulted.
func restrictionsOf(entity *poiEntity) *models.Restrictions {
	if entity.MinHeight == nil && entity.MaxHeight == nil &&
		entity.MinAge == nil && entity.MaxAge == nil &&
		entity.MinHeightAccompanied == nil && entity.MinAgeAccompanied == nil {
		return nil
	}

	return &models.Restrictions{
		MinHeight:            entity.MinHeight,
		MaxHeight:            entity.MaxHeight,
		MinAge:               entity.MinAge,
		MaxAge:               entity.MaxAge,
		MinHeightAccompanied: entity.MinHeightAccompanied,
		MinAgeAccompanied:    entity.MinAgeAccompanied,
	}
}

func (a *Adapter) inScope(scopes []string) bool {
	for _, s := range scopes {
		if s == a.scope {
			return true
		}
	}

	return false
}

// GetPOIs returns the normalized POIs of one kind for the given locale.
func (a *Adapter) GetPOIs(ctx context.Context, kind models.Kind, locale string) ([]models.POI, error) {
	byCode, err := a.buildPOIs(ctx, kind, locale)
	if err != nil {
		return nil, err
	}

	out := make([]models.POI, 0, len(byCode))
	for _, poi := range byCode {
		out = append(out, poi)
	}

	return out, nil
}
