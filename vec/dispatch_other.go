//go:build !amd64 && !arm64

package vec

// Other architectures run the apply loops one lane at a time.
