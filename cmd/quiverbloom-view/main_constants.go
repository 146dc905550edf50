package main

// Command-line defaults
const (
	defaultAlgorithm = "1"
	defaultScale     = 2.0
	defaultTPS       = 60
)
