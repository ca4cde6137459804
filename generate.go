package bitint

//go:generate go run ./cmd/bitintgen -out . 24 48 80 256 512 1024 2048 4096
