package log

// ScopeLabel maps a network id to the short scope label shown in rendered
// output. Ids 0..2 are the fixed zeam networks; everything else falls back
// to the default scope.
func ScopeLabel(networkID uint32) string {
	switch networkID {
	case 0:
		return "zeam-n1"
	case 1:
		return "zeam-n2"
	case 2:
		return "zeam-n3"
	default:
		return "zeam-default"
	}
}
