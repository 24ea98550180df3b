package processor

import (
	"io"
	"net/http"
	"strings"

	"github.com/golang/snappy"
)

// SnappyEncoding - значение Content-Encoding для ответов в формате snappy framing
const SnappyEncoding = "x-snappy-framed"

// CompressPayload сжимает данные блочным форматом snappy
func CompressPayload(data []byte) []byte {
	return snappy.Encode(nil, data)
}

// DecompressPayload распаковывает данные, сжатые CompressPayload
func DecompressPayload(data []byte) ([]byte, error) {
	decompressed, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, err
	}
	return decompressed, nil
}

// AcceptsSnappy проверяет, готов ли клиент принять ответ в snappy framing
func AcceptsSnappy(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		encoding, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		if encoding == SnappyEncoding {
			return true
		}
	}
	return false
}

// NewFramedWriter возвращает потоковый компрессор; его нужно закрыть
func NewFramedWriter(w io.Writer) io.WriteCloser {
	return snappy.NewBufferedWriter(w)
}

// NewFramedReader возвращает потоковый распаковщик
func NewFramedReader(r io.Reader) io.Reader {
	return snappy.NewReader(r)
}
