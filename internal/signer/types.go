package signer

import (
	"net/http"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	KMSMetrics interface {
		Observe(operation string, err error, started time.Time)
	}

	httpDoer interface {
		Do(req *http.Request) (*http.Response, error)
	}
)
