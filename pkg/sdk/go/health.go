// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rosterio/roster/pkg/errors"
)

const healthEndpoint = "health"

func (sdk roSDK) Health() (HealthInfo, errors.SDKError) {
	reqURL := fmt.Sprintf("%s/%s", sdk.peopleURL, healthEndpoint)
	_, body, sdkerr := sdk.processRequest(http.MethodGet, reqURL, nil, http.StatusOK)
	if sdkerr != nil {
		return HealthInfo{}, sdkerr
	}

	var h HealthInfo
	if err := json.Unmarshal(body, &h); err != nil {
		return HealthInfo{}, errors.NewSDKError(err)
	}

	return h, nil
}
