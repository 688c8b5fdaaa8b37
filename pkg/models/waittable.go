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

package models

// WaitTable decodes vendor wait-time sentinels into the canonical
// status enum. The shape is shared across the whole adapter fleet:
// every vendor declares its own table, the decode logic never changes.
type WaitTable struct {
	// OperatingMax is the highest sentinel treated as a live wait in
	// minutes. Values above it decode only through Sentinels.
	OperatingMax int
	// Sentinels maps the vendor's magic values onto canonical states;
	// all of them carry a wait of zero.
	Sentinels map[int]Status
}

// Decode maps one raw sentinel. The third return is false when the
// sentinel matches neither the operating range nor the table; callers
// omit such records rather than guess at undocumented meanings.
func (t WaitTable) Decode(sentinel int) (Status, int, bool) {
	if sentinel >= 0 && sentinel <= t.OperatingMax {
		return StatusOperating, sentinel, true
	}

	if s, ok := t.Sentinels[sentinel]; ok {
		return s, 0, true
	}

	return "", 0, false
}
