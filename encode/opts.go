package encode

type EncodeOption func(*EncState)

func EncodeFormatted(v bool) EncodeOption {
	return func(es *EncState) { es.formatted = v }
}

// Depth sets the starting indentation depth for formatted output, for
// embedding encoded fragments in already indented surroundings.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}
