package wallet

import (
	"bufio"
	"bytes"
	"crypto/sha512"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/awnumar/memguard"
	"github.com/tink-crypto/tink-go/v2/insecurecleartextkeyset"
	"github.com/tink-crypto/tink-go/v2/keyset"
	gcmhkdfpb "github.com/tink-crypto/tink-go/v2/proto/aes_gcm_hkdf_streaming_go_proto"
	commonpb "github.com/tink-crypto/tink-go/v2/proto/common_go_proto"
	tinkpb "github.com/tink-crypto/tink-go/v2/proto/tink_go_proto"
	"github.com/tink-crypto/tink-go/v2/streamingaead"
	"github.com/tink-crypto/tink-go/v2/tink"
	"golang.org/x/crypto/hkdf"
	"google.golang.org/protobuf/proto"

	"scrambler/internal/wordlist"
)

const (
	SealedExt = ".sealed"

	sealVersion   = "1"
	sealAlgorithm = "AES256-GCM-HKDF-1MB"
	sealFormat    = "base64"
	sealKeyLen    = 32
	sealInfo      = "scrambler:v1:seal"

	sealSegmentSize = 1 << 20
	sealKeyID       = 1
	sealKeyTypeURL  = "type.googleapis.com/google.crypto.tink.AesGcmHkdfStreamingKey"
)

// ErrSealOpen covers every failure to authenticate a sealed wallet, which in
// practice means a wrong password.
var ErrSealOpen = errors.New("unable to open sealed wallet (wrong password or corrupted file?)")

// SealedHeader is the JSON first line of a sealed wallet. Its exact bytes are
// the associated data of the ciphertext that follows.
type SealedHeader struct {
	Version   string `json:"version"`
	Algorithm string `json:"algorithm"`
	Format    string `json:"format"`
	Language  string `json:"language"`
}

// IsSealed reports whether path names a sealed wallet.
func IsSealed(path string) bool {
	return strings.EqualFold(filepath.Ext(path), SealedExt)
}

// Seal writes w encrypted under a key expanded from secret. The plaintext is
// the same one-word-per-line text Write produces.
func Seal(out io.Writer, secret []byte, w Wallet, wl *wordlist.WordList) error {
	var plain bytes.Buffer
	if err := Write(&plain, wl, w.Indices); err != nil {
		return err
	}
	defer memguard.WipeBytes(plain.Bytes())

	primitive, err := newStreamingAEAD(secret)
	if err != nil {
		return err
	}

	headerBytes, err := json.Marshal(SealedHeader{
		Version:   sealVersion,
		Algorithm: sealAlgorithm,
		Format:    sealFormat,
		Language:  w.Lang.ShortName(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}

	bw := bufio.NewWriter(out)
	if _, err := bw.Write(append(headerBytes, '\n')); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	encoder := base64.NewEncoder(base64.StdEncoding, bw)
	encWriter, err := primitive.NewEncryptingWriter(encoder, headerBytes)
	if err != nil {
		return fmt.Errorf("failed to create encrypting writer: %w", err)
	}
	if _, err := encWriter.Write(plain.Bytes()); err != nil {
		return fmt.Errorf("encryption failed: %w", err)
	}
	if err := encWriter.Close(); err != nil {
		return fmt.Errorf("failed to finalize encryption: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize output: %w", err)
	}
	if _, err := bw.WriteString("\n"); err != nil {
		return fmt.Errorf("failed to write final newline: %w", err)
	}
	return bw.Flush()
}

// Open reverses Seal. The language comes from the authenticated header
// rather than from detection.
func Open(in io.Reader, secret []byte, reg *wordlist.Registry) (Wallet, error) {
	reader := bufio.NewReader(in)
	headerLine, err := reader.ReadBytes('\n')
	if err != nil {
		return Wallet{}, fmt.Errorf("failed to read header (is it a sealed wallet?): %w", err)
	}
	headerBytes := bytes.TrimRight(headerLine, "\r\n")

	var header SealedHeader
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return Wallet{}, fmt.Errorf("failed to parse header (is it a sealed wallet?): %w", err)
	}
	if header.Version != sealVersion {
		return Wallet{}, fmt.Errorf("unsupported sealed wallet version: %q", header.Version)
	}
	if header.Algorithm != sealAlgorithm {
		return Wallet{}, fmt.Errorf("unsupported algorithm: %s", header.Algorithm)
	}
	if header.Format != sealFormat {
		return Wallet{}, fmt.Errorf("unsupported format: %s", header.Format)
	}
	lang, err := wordlist.ParseLanguage(header.Language)
	if err != nil {
		return Wallet{}, fmt.Errorf("%w: %v", ErrUnsupportedWalletFile, err)
	}
	wl, err := reg.Get(lang)
	if err != nil {
		return Wallet{}, err
	}

	primitive, err := newStreamingAEAD(secret)
	if err != nil {
		return Wallet{}, err
	}
	decoder := base64.NewDecoder(base64.StdEncoding, newNewlineTrimmingReader(reader))
	decReader, err := primitive.NewDecryptingReader(decoder, headerBytes)
	if err != nil {
		return Wallet{}, fmt.Errorf("%w: %v", ErrSealOpen, err)
	}
	plain, err := io.ReadAll(decReader)
	if err != nil {
		return Wallet{}, fmt.Errorf("%w: %v", ErrSealOpen, err)
	}
	defer memguard.WipeBytes(plain)

	words, err := wordlist.ReadLines(bytes.NewReader(plain))
	if err != nil {
		return Wallet{}, err
	}
	if err := CheckSize(len(words)); err != nil {
		return Wallet{}, err
	}
	indices, err := wl.Indices(words)
	if err != nil {
		return Wallet{}, fmt.Errorf("%w: %v", ErrUnsupportedWalletFile, err)
	}
	return Wallet{Lang: lang, Indices: indices}, nil
}

// SaveSealed writes a sealed wallet to path, adding .sealed when path has no
// extension, and returns the path written.
func SaveSealed(path string, secret []byte, w Wallet, wl *wordlist.WordList) (string, error) {
	path = withExt(path, SealedExt)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return "", fmt.Errorf("unable to create wallet file: %w", err)
	}
	if err := Seal(f, secret, w, wl); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("unable to write wallet file: %w", err)
	}
	return path, nil
}

// LoadSealed reads a sealed wallet from path.
func LoadSealed(path string, secret []byte, reg *wordlist.Registry) (Wallet, error) {
	f, err := os.Open(path)
	if err != nil {
		return Wallet{}, fmt.Errorf("unable to open wallet file: %w", err)
	}
	defer f.Close()
	return Open(f, secret, reg)
}

// newStreamingAEAD expands secret into an AES-GCM-HKDF streaming key and
// returns the tink primitive for it.
func newStreamingAEAD(secret []byte) (tink.StreamingAEAD, error) {
	key := make([]byte, sealKeyLen)
	defer memguard.WipeBytes(key)
	if _, err := io.ReadFull(hkdf.New(sha512.New, secret, nil, []byte(sealInfo)), key); err != nil {
		return nil, fmt.Errorf("failed to expand sealing key: %w", err)
	}

	value, err := proto.Marshal(&gcmhkdfpb.AesGcmHkdfStreamingKey{
		Params: &gcmhkdfpb.AesGcmHkdfStreamingParams{
			CiphertextSegmentSize: sealSegmentSize,
			DerivedKeySize:        sealKeyLen,
			HkdfHashType:          commonpb.HashType_SHA256,
		},
		KeyValue: key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode sealing key: %w", err)
	}
	// The primitive unmarshals its own copy of the key.
	defer memguard.WipeBytes(value)

	handle, err := insecurecleartextkeyset.Read(&keyset.MemReaderWriter{Keyset: &tinkpb.Keyset{
		PrimaryKeyId: sealKeyID,
		Key: []*tinkpb.Keyset_Key{{
			KeyData: &tinkpb.KeyData{
				TypeUrl:         sealKeyTypeURL,
				Value:           value,
				KeyMaterialType: tinkpb.KeyData_SYMMETRIC,
			},
			Status:           tinkpb.KeyStatusType_ENABLED,
			KeyId:            sealKeyID,
			OutputPrefixType: tinkpb.OutputPrefixType_RAW,
		}},
	}})
	if err != nil {
		return nil, fmt.Errorf("failed to create keyset: %w", err)
	}
	primitive, err := streamingaead.New(handle)
	if err != nil {
		return nil, fmt.Errorf("failed to create streaming AEAD: %w", err)
	}
	return primitive, nil
}

// newlineTrimmingReader drops line breaks so base64 bodies may be wrapped or
// end in a newline.
type newlineTrimmingReader struct {
	r io.Reader
}

func newNewlineTrimmingReader(r io.Reader) *newlineTrimmingReader {
	return &newlineTrimmingReader{r: r}
}

func (t *newlineTrimmingReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	out := p[:0]
	for _, c := range p[:n] {
		if c != '\n' && c != '\r' {
			out = append(out, c)
		}
	}
	return len(out), err
}
