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

// Credentials is the decrypted output of the remote-config step: the
// exact body of a client-credentials grant. Immutable once produced.
type Credentials struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	GrantType    string `json:"grant_type"`
}

// remoteConfigRequest carries the device identity plus the fixed app
// identifiers to the remote-configuration endpoint.
type remoteConfigRequest struct {
	AppInstanceID string `json:"appInstanceId"`
	AppID         string `json:"appId"`
	PackageName   string `json:"packageName"`
	LanguageCode  string `json:"languageCode"`
}

// remoteConfigResponse holds named entries whose values are
// base64-encoded Blowfish/CBC ciphertext.
type remoteConfigResponse struct {
	Entries map[string]string `json:"entries"`
	State   string            `json:"state"`
}

// accessTokenResponse is the login endpoint's reply to a
// client-credentials grant.
type accessTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// poiResponse is the raw POI listing for one locale.
type poiResponse struct {
	POIs []poiEntity `json:"pois"`
}

// poiEntity is one raw vendor entity. Optional restriction fields stay
// nil when the vendor declares no limit.
type poiEntity struct {
	ID          int      `json:"id"`
	Code        int      `json:"code"`
	Type        string   `json:"type"`
	Scopes      []string `json:"scopes"`
	Name        string   `json:"name"`
	Excerpt     string   `json:"excerpt"`
	Description string   `json:"description"`
	AreaID      int      `json:"areaId"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`

	Attributes []poiAttribute `json:"attributes"`

	MinHeight            *int `json:"minHeight"`
	MaxHeight            *int `json:"maxHeight"`
	MinAge               *int `json:"minAge"`
	MaxAge               *int `json:"maxAge"`
	MinHeightAccompanied *int `json:"minHeightAdult"`
	MinAgeAccompanied    *int `json:"minAgeAdult"`
}

// poiAttribute is one declared key/value pair on a POI.
type poiAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// waitingTimesResponse is the live queue listing.
type waitingTimesResponse struct {
	WaitingTimes []waitingTime `json:"waitingtimes"`
}

// waitingTime is one live queue row. Time is the vendor sentinel: real
// minutes up to 90, magic values above (see the status table).
type waitingTime struct {
	Code    int    `json:"code"`
	Time    int    `json:"time"`
	StartAt string `json:"startAt"`
	Scope   string `json:"scope"`
}

// seasonsResponse is the operating-calendar listing.
type seasonsResponse struct {
	Seasons []season `json:"seasons"`
}

// season is one vendor-declared date range with daily opening hours.
// Guest hours, when present, describe an additional hotel-guest-only
// window outside the regular hours.
type season struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Scopes []string `json:"scopes"`
	// StartAt and EndAt bound the range, formatted 2006-01-02.
	StartAt string `json:"startAt"`
	EndAt   string `json:"endAt"`
	Closed  bool   `json:"closed"`
	// OpenFrom and ClosedFrom are local times of day, formatted 15:04.
	OpenFrom   string `json:"openFrom"`
	ClosedFrom string `json:"closedFrom"`

	GuestOpenFrom   string `json:"hotelOpenFrom"`
	GuestClosedFrom string `json:"hotelClosedFrom"`
}
