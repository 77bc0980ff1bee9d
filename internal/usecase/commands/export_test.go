//go:build unit

package commands

// HashParamsForTest exposes the idempotency request fingerprint to tests.
var HashParamsForTest = hashParams
