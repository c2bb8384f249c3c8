package common

const (
	// HeaderDeviceID carries the per-installation device identifier on
	// auth and authorized requests.
	HeaderDeviceID = "x-device-id"

	// HeaderAuthorization carries the bearer token on authorized requests.
	HeaderAuthorization = "Authorization"
)
