package user

import (
	domcommon "userservice/internal/domain/common"
)

func IsNotFound(err error) bool {
	return domcommon.IsNotFound(err)
}

func IsConnectivity(err error) bool {
	return domcommon.IsConnectivity(err)
}

// StoreMessage returns the raw store error text when err is a store failure.
func StoreMessage(err error) (string, bool) {
	se, ok := domcommon.AsStore(err)
	if !ok {
		return "", false
	}
	return se.Error(), true
}
