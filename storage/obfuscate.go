package storage

import "encoding/base64"

// Obfuscate encodes a string so it is not readable at a glance in the
// store. This is NOT encryption and provides no security.
func Obfuscate(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// Deobfuscate reverses Obfuscate. Malformed input yields an empty string.
func Deobfuscate(s string) string {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return ""
	}
	return string(data)
}
