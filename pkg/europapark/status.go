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

import "github.com/AlexVV13/tp-api-sub000/pkg/models"

// waitTable is this vendor family's sentinel table. 91 is the vendor's
// "over 90 minutes" cap and still counts as operating. 555 is treated
// as down exactly as observed; its meaning overlaps across vendor
// tables and no broader intent is assumed.
var waitTable = models.WaitTable{
	OperatingMax: 91,
	Sentinels: map[int]models.Status{
		222: models.StatusRefurbishment,
		333: models.StatusClosed,
		444: models.StatusDown,
		555: models.StatusDown,
		666: models.StatusFastPassFull,
		777: models.StatusFastPassFinished,
		999: models.StatusDown,
	},
}
