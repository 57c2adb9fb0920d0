// Package cache provides a small thread-safe LRU cache.
//
// The preview server keeps generated QR code images in one, keyed by the
// encoded address and size:
//
//	qr := cache.NewLRU[qrKey, []byte](64)
//	png, err := qr.GetOrCreate(key, func() ([]byte, error) {
//		return qrcode.Generate(key.target, qrcode.WithSize(key.size))
//	})
package cache
