// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

package roster

import (
	"encoding/json"
	"net/http"
)

const (
	version = "0.1.0"

	contentType = "application/health+json"
	svcStatus   = "pass"
)

// HealthInfo contains health check response fields.
type HealthInfo struct {
	// Status contains the service status.
	Status string `json:"status"`

	// Version contains the current service version.
	Version string `json:"version"`

	// Description contains the service description.
	Description string `json:"description"`

	// InstanceID contains the ID of the running service instance.
	InstanceID string `json:"instance_id"`
}

// Health exposes an HTTP handler for retrieving service health.
func Health(service, instanceID string) http.HandlerFunc {
	return func(rw http.ResponseWriter, _ *http.Request) {
		res := HealthInfo{
			Status:      svcStatus,
			Version:     version,
			Description: service + " service",
			InstanceID:  instanceID,
		}

		rw.Header().Set("Content-Type", contentType)
		rw.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(rw).Encode(res); err != nil {
			http.Error(rw, err.Error(), http.StatusInternalServerError)
		}
	}
}
