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
	"time"

	"github.com/AlexVV13/tp-api-sub000/pkg/cache"
	"github.com/AlexVV13/tp-api-sub000/pkg/models"
)

const (
	// The rolling calendar runs from yesterday through +60 days.
	scheduleDaysBack  = 1
	scheduleDaysAhead = 60

	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// fetchSeasons retrieves the operating-calendar listing for one locale.
func (a *Adapter) fetchSeasons(ctx context.Context, token, locale string) ([]season, error) {
	url := fmt.Sprintf("%s/api/v1/seasons/%s", a.cfg.BaseURL, locale)

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

	var sResp seasonsResponse

	if err := json.NewDecoder(resp.Body).Decode(&sResp); err != nil {
		return nil, err
	}

	return sResp.Seasons, nil
}

// getSeasons serves the seasons resource from the scoped cache; the
// listing changes rarely, so it shares the POI cache duration.
func (a *Adapter) getSeasons(ctx context.Context, locale string) ([]season, error) {
	return cache.Wrap(ctx, a.store, scopeSchedule, locale, a.cfg.poiTTL(),
		func(ctx context.Context) ([]season, error) {
			token, err := a.getAccessToken(ctx)
			if err != nil {
				return nil, err
			}

			return a.fetchSeasons(ctx, token, locale)
		})
}

// GetSchedules builds the rolling calendar of operating windows for the
// park. Days with no matching non-closed season produce no record at
// all; this family never synthesizes an explicit closed marker.
func (a *Adapter) GetSchedules(ctx context.Context) ([]models.ScheduleRecord, error) {
	seasons, err := a.getSeasons(ctx, defaultLocale)
	if err != nil {
		return nil, err
	}

	return a.reconcile(seasons, a.now().In(a.tz)), nil
}

// reconcile pins season hours onto each date of the rolling window.
// Past dates are dropped unless now falls inside one of that date's
// windows, which keeps a currently-open day visible across a midnight
// boundary.
func (a *Adapter) reconcile(seasons []season, now time.Time) []models.ScheduleRecord {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, a.tz)
	records := make([]models.ScheduleRecord, 0, scheduleDaysAhead)

	for offset := -scheduleDaysBack; offset <= scheduleDaysAhead; offset++ {
		day := today.AddDate(0, 0, offset)

		s, ok := a.seasonFor(seasons, day)
		if !ok {
			continue
		}

		windows, ok := a.windowsFor(s, day)
		if !ok {
			continue
		}

		if offset < 0 && !anyWindowContains(windows, now) {
			continue
		}

		records = append(records, windows...)
	}

	return records
}

// seasonFor selects the season entry scoped to this park whose range
// contains the date and whose closed flag is false.
func (a *Adapter) seasonFor(seasons []season, day time.Time) (*season, bool) {
	for i := range seasons {
		s := &seasons[i]

		if s.Closed || !a.inScope(s.Scopes) {
			continue
		}

		start, err := time.ParseInLocation(dateLayout, s.StartAt, a.tz)
		if err != nil {
			continue
		}

		end, err := time.ParseInLocation(dateLayout, s.EndAt, a.tz)
		if err != nil {
			continue
		}

		if day.Before(start) || day.After(end) {
			continue
		}

		return s, true
	}

	return nil, false
}

// windowsFor pins the season's time-of-day hours onto one calendar
// date. The optional second window covers hotel-guest-only hours.
func (a *Adapter) windowsFor(s *season, day time.Time) ([]models.ScheduleRecord, bool) {
	opening, err := pinClock(day, s.OpenFrom, a.tz)
	if err != nil {
		a.log.Debug().
			Str("season", s.Name).
			Str("open_from", s.OpenFrom).
			Msg("Dropping schedule day with unparseable opening time")

		return nil, false
	}

	closing, err := pinClock(day, s.ClosedFrom, a.tz)
	if err != nil {
		a.log.Debug().
			Str("season", s.Name).
			Str("closed_from", s.ClosedFrom).
			Msg("Dropping schedule day with unparseable closing time")

		return nil, false
	}

	// A closing time of day at or before the opening one means the
	// park runs past midnight; the closing instant lands on the next
	// calendar date while the record stays pinned to this one.
	if !closing.After(opening) {
		closing = closing.AddDate(0, 0, 1)
	}

	windows := []models.ScheduleRecord{{
		OpeningTime: opening,
		ClosingTime: closing,
		Date:        day.Format(dateLayout),
		Type:        models.ScheduleTypeOperating,
		Description: s.Name,
	}}

	if s.GuestOpenFrom != "" && s.GuestClosedFrom != "" {
		guestOpen, errOpen := pinClock(day, s.GuestOpenFrom, a.tz)
		guestClose, errClose := pinClock(day, s.GuestClosedFrom, a.tz)

		if errOpen == nil && errClose == nil {
			windows = append(windows, models.ScheduleRecord{
				OpeningTime: guestOpen,
				ClosingTime: guestClose,
				Date:        day.Format(dateLayout),
				Type:        models.ScheduleTypeExtraHours,
				Description: "Hotel guests only",
			})
		}
	}

	return windows, true
}

// pinClock places an HH:MM time of day onto a specific calendar date in
// the park's timezone.
func pinClock(day time.Time, clock string, tz *time.Location) (time.Time, error) {
	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0, tz), nil
}

func anyWindowContains(windows []models.ScheduleRecord, now time.Time) bool {
	for _, w := range windows {
		if !now.Before(w.OpeningTime) && now.Before(w.ClosingTime) {
			return true
		}
	}

	return false
}
