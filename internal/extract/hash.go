package extract

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"

	"bulkrename/internal/config"
	"bulkrename/internal/fileutil"
)

var algorithms = map[string]func() hash.Hash{
	config.AlgorithmMD5:    md5.New,
	config.AlgorithmSHA256: sha256.New,
}

type hasher struct {
	newHash func() hash.Hash
}

func newHash(s Settings) (Extractor, error) {
	algorithm := s.Algorithm
	if algorithm == "" {
		algorithm = config.AlgorithmMD5
	}
	fn, ok := algorithms[algorithm]
	if !ok {
		return nil, fmt.Errorf("unsupported algorithm %q", s.Algorithm)
	}
	return &hasher{newHash: fn}, nil
}

func (h *hasher) Placeholders(path string) (Values, error) {
	sum, err := fileutil.HashFile(path, h.newHash())
	if err != nil {
		return nil, err
	}
	return Values{"hash": hex.EncodeToString(sum)}, nil
}
