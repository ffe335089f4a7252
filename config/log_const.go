package config

// Color constants for console log prefixes.
const (
	ColorGreen = "\033[32m"
	ColorRed   = "\033[31m"
	ColorCyan  = "\033[36m"
	ColorReset = "\033[0m"
)
