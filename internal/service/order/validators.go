package order

func isValidLatitude(latitude float64) bool {
	return latitude >= -90 && latitude <= 90
}

func isValidLongitude(longitude float64) bool {
	return longitude >= -180 && longitude <= 180
}

func isValidStatus(status string) bool {
	switch status {
	case "PENDING", "CONFIRMED", "IN_TRANSIT", "DELIVERED", "CANCELLED":
		return true
	default:
		return false
	}
}
