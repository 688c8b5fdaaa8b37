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

	"github.com/google/uuid"

	"github.com/AlexVV13/tp-api-sub000/pkg/models"
)

// fetchWaitingTimes retrieves the live queue listing.
func (a *Adapter) fetchWaitingTimes(ctx context.Context, token string) ([]waitingTime, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		a.cfg.BaseURL+"/api/v1/waitingtimes", http.NoBody)
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

	var wtResp waitingTimesResponse

	if err := json.NewDecoder(resp.Body).Decode(&wtResp); err != nil {
		return nil, err
	}

	return wtResp.WaitingTimes, nil
}

// GetQueues returns the canonical queue records for the park. Rows
// whose vendor code has no matching POI record are dropped one by one;
// partial data beats total failure for the batch. Rows with a sentinel
// outside the decode table are dropped the same way.
func (a *Adapter) GetQueues(ctx context.Context, locale string) ([]models.QueueRecord, error) {
	fetchID := uuid.NewString()
	log := a.log.With().Str("fetch_id", fetchID).Logger()

	rides, err := a.buildPOIs(ctx, models.KindRide, locale)
	if err != nil {
		return nil, err
	}

	token, err := a.getAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := a.fetchWaitingTimes(ctx, token)
	if err != nil {
		return nil, err
	}

	records := make([]models.QueueRecord, 0, len(rows))

	for _, row := range rows {
		poi, ok := rides[row.Code]
		if !ok {
			log.Debug().
				Int("code", row.Code).
				Msg("Dropping queue row without matching POI record")

			continue
		}

		status, wait, ok := waitTable.Decode(row.Time)
		if !ok {
			log.Debug().
				Int("code", row.Code).
				Int("sentinel", row.Time).
				Msg("Dropping queue row with unknown wait sentinel")

			continue
		}

		record := models.QueueRecord{
			Name:     poi.Name,
			ID:       poi.ID,
			WaitTime: wait,
			Status:   status,
			Active:   status == models.StatusOperating,
			Location: poi.Location,
			Meta:     poi.Meta,
		}

		if poi.IsVirtQueue {
			record.FastPass = &models.FastPass{
				ReturnTime:  row.StartAt,
				IsVirtQueue: true,
				Parent:      poi.Parent,
			}
		}

		records = append(records, record)
	}

	log.Debug().
		Int("rows", len(rows)).
		Int("records", len(records)).
		Msg("Built queue records")

	return records, nil
}
