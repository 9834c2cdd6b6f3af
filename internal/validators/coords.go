package validators

// IsValidCoordinate confere os limites geográficos de uma posição
// enviada pelo aplicativo do técnico.
func IsValidCoordinate(lat, lng float64) bool {
	if lat < -90 || lat > 90 {
		return false
	}
	if lng < -180 || lng > 180 {
		return false
	}
	return true
}
