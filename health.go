// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package bookstore

import (
	"encoding/json"
	"net/http"
)

const (
	contentType = "Content-Type"
	appJSON     = "application/json"
	svcStatus   = "pass"

	// Version of the service. Set at service startup.
	Version = "0.4.0"
)

// HealthInfo contains version endpoint response.
type HealthInfo struct {
	// Status contains service status.
	Status string `json:"status"`

	// Version contains current service version.
	Version string `json:"version"`

	// Description contains service description.
	Description string `json:"description"`

	// InstanceID contains the ID of the service instance.
	InstanceID string `json:"instance_id"`
}

// Health exposes an HTTP handler for retrieving service health.
func Health(service, instanceID string) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		res := HealthInfo{
			Status:      svcStatus,
			Version:     Version,
			Description: service + " service",
			InstanceID:  instanceID,
		}

		rw.Header().Set(contentType, appJSON)
		if err := json.NewEncoder(rw).Encode(res); err != nil {
			rw.WriteHeader(http.StatusInternalServerError)
		}
	}
}
