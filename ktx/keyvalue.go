package ktx

import (
	"bytes"
	"encoding/binary"

	"github.com/kpfaulkner/gdxtex/texerr"
	"github.com/kpfaulkner/gdxtex/texio"
)

// KeyValue is one entry of the KTX metadata block. Value keeps any trailing
// NUL the writer included.
type KeyValue struct {
	Key   string
	Value []byte
}

// ParseKeyValues splits a bytesOfKeyValueData block into its entries, in file
// order. Each entry is a keyAndValueByteSize, a NUL terminated key, the value
// and padding to the next 4 byte boundary.
func ParseKeyValues(data []byte, order binary.ByteOrder) ([]KeyValue, error) {
	var kvs []KeyValue
	r := texio.NewReader(data, order)
	for r.Remaining() > 0 {
		size, err := r.Uint32()
		if err != nil {
			return nil, err
		}
		kv, err := r.Bytes(int(size))
		if err != nil {
			return nil, err
		}
		// the last entry may omit its padding
		if pad := 3 - int(size+3)%4; pad <= r.Remaining() {
			_ = r.Skip(pad)
		} else {
			_ = r.Skip(r.Remaining())
		}

		nul := bytes.IndexByte(kv, 0)
		if nul < 0 {
			return nil, texerr.New(texerr.TruncatedData, "ktx key/value: key without NUL terminator")
		}
		kvs = append(kvs, KeyValue{Key: string(kv[:nul]), Value: kv[nul+1:]})
	}
	return kvs, nil
}

// KeyValues parses the image's metadata block in the file's byte order.
func (img *Image) KeyValues() ([]KeyValue, error) {
	return ParseKeyValues(img.KeyValueData, img.Order)
}

// Lookup returns the value of the first entry named key.
func Lookup(kvs []KeyValue, key string) ([]byte, bool) {
	for _, kv := range kvs {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return nil, false
}
