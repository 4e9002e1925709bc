// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dbirtolo/bookstore/pkg/errors"
)

// HealthInfo contains health check details of the service.
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

func (sdk bsSDK) Health() (HealthInfo, errors.SDKError) {
	url := fmt.Sprintf("%s/%s", sdk.bookstoreURL, healthEndpoint)

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, "", nil, nil, http.StatusOK)
	if sdkerr != nil {
		return HealthInfo{}, sdkerr
	}

	var h HealthInfo
	if err := json.Unmarshal(body, &h); err != nil {
		return HealthInfo{}, errors.NewSDKError(err)
	}

	return h, nil
}
