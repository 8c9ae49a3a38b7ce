package service

import (
	"errors"

	appErrors "github.com/aaravmahajanofficial/cymbal-sports-api/internal/errors"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/metrics"
	repository "github.com/aaravmahajanofficial/cymbal-sports-api/internal/repositories"
)

// storeFailure keeps "store unreachable" (503) apart from every other
// repository failure (500).
func storeFailure(message string, err error) error {
	if errors.Is(err, repository.ErrStoreUnavailable) {
		metrics.RecordStoreUnavailable()
		return appErrors.StoreUnavailableError(message).WithError(err)
	}
	return appErrors.DatabaseError(message).WithError(err)
}
