package zcashd

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zewif-network/zewif-zcashd/pkg/parser"
)

func le32(v uint32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return buf[:]
}

func le64(v uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return buf[:]
}

func compactData(data []byte) []byte {
	return append(parser.AppendCompactSize(nil, uint64(len(data))), data...)
}

func compactString(s string) []byte {
	return compactData([]byte(s))
}

func filled(n int, b byte) []byte {
	return bytes.Repeat([]byte{b}, n)
}

func TestKeyMetadataVersions(t *testing.T) {
	t.Run("pre HD data", func(t *testing.T) {
		buf := append(le32(1), le64(1600000000)...)

		var metadata KeyMetadata
		require.NoError(t, parser.FromBytes(buf, &metadata))

		assert.Equal(t, int32(1), metadata.Version)
		assert.Equal(t, int64(1600000000), metadata.CreateTime)
		assert.Empty(t, metadata.HDKeypath)
	})

	t.Run("with HD keypath", func(t *testing.T) {
		buf := append(le32(10), le64(1600000000)...)
		buf = append(buf, compactString("m/44'/133'/0'/0/0")...)

		var metadata KeyMetadata
		require.NoError(t, parser.FromBytes(buf, &metadata))

		assert.Equal(t, "m/44'/133'/0'/0/0", metadata.HDKeypath)
	})

	t.Run("with key origin", func(t *testing.T) {
		buf := append(le32(12), le64(1600000000)...)
		buf = append(buf, compactString("m/32'/133'/0'")...)
		buf = append(buf, filled(32, 0xab)...)

		var metadata KeyMetadata
		require.NoError(t, parser.FromBytes(buf, &metadata))

		var wantFingerprint SeedFingerprint
		copy(wantFingerprint[:], filled(32, 0xab))
		assert.Equal(t, wantFingerprint, metadata.SeedFingerprint)
	})
}

func TestPubKeyParse(t *testing.T) {
	t.Run("compressed", func(t *testing.T) {
		var pubKey PubKey
		require.NoError(t, parser.FromBytes(compactData(filled(33, 0x02)), &pubKey))
		assert.True(t, pubKey.IsCompressed())
		assert.Len(t, pubKey.Bytes(), 33)
	})

	t.Run("uncompressed", func(t *testing.T) {
		var pubKey PubKey
		require.NoError(t, parser.FromBytes(compactData(filled(65, 0x04)), &pubKey))
		assert.False(t, pubKey.IsCompressed())
	})

	t.Run("bad length", func(t *testing.T) {
		var pubKey PubKey
		err := parser.FromBytes(compactData(filled(20, 0x02)), &pubKey)

		var lengthErr *InvalidLengthError
		require.ErrorAs(t, err, &lengthErr)
		assert.Equal(t, "pubkey", lengthErr.Kind)
		assert.Equal(t, []int{33, 65}, lengthErr.Expected)
		assert.Equal(t, 20, lengthErr.Actual)
	})
}

func TestPrivKeyParse(t *testing.T) {
	t.Run("bad length", func(t *testing.T) {
		buf := append(compactData(filled(100, 0x01)), filled(32, 0)...)

		var privKey PrivKey
		err := parser.FromBytes(buf, &privKey)

		var lengthErr *InvalidLengthError
		require.ErrorAs(t, err, &lengthErr)
		assert.Equal(t, []int{214, 279}, lengthErr.Expected)
		assert.Equal(t, 100, lengthErr.Actual)
	})

	t.Run("accepted lengths", func(t *testing.T) {
		for _, length := range []int{214, 279} {
			buf := append(compactData(filled(length, 0x01)), filled(32, 0xcd)...)

			var privKey PrivKey
			require.NoError(t, parser.FromBytes(buf, &privKey))
			assert.Len(t, privKey.Bytes(), length)
		}
	})
}

func TestNewKeyPair(t *testing.T) {
	pubBytes := filled(33, 0x03)
	privBytes := filled(214, 0x07)

	material := append(append([]byte{}, pubBytes...), privBytes...)
	hash := chainhash.DoubleHashH(material)

	var pubKey PubKey
	require.NoError(t, parser.FromBytes(compactData(pubBytes), &pubKey))

	privBuf := append(compactData(privBytes), hash[:]...)
	var privKey PrivKey
	require.NoError(t, parser.FromBytes(privBuf, &privKey))

	t.Run("hash matches", func(t *testing.T) {
		keyPair, err := NewKeyPair(pubKey, privKey, KeyMetadata{})
		require.NoError(t, err)
		assert.Equal(t, pubKey.Hex(), keyPair.PubKey().Hex())
	})

	t.Run("hash mismatch", func(t *testing.T) {
		corruptBuf := append(compactData(privBytes), filled(32, 0xff)...)
		var corrupt PrivKey
		require.NoError(t, parser.FromBytes(corruptBuf, &corrupt))

		_, err := NewKeyPair(pubKey, corrupt, KeyMetadata{})
		assert.ErrorIs(t, err, ErrInvalidKeypair)
	})
}

func TestSproutSpendingKeyBitPattern(t *testing.T) {
	t.Run("high nibble clear", func(t *testing.T) {
		buf := filled(32, 0x11)
		buf[31] = 0x0f

		var key SproutSpendingKey
		assert.NoError(t, parser.FromBytes(buf, &key))
	})

	t.Run("high nibble set", func(t *testing.T) {
		buf := filled(32, 0x11)
		buf[31] = 0x10

		var key SproutSpendingKey
		err := parser.FromBytes(buf, &key)

		var bitErr *InvalidBitPatternError
		require.ErrorAs(t, err, &bitErr)
		assert.Equal(t, "u252", bitErr.Kind)
	})
}

func TestSaplingExtendedSpendingKey(t *testing.T) {
	buf := []byte{3}
	buf = append(buf, filled(4, 0xaa)...)
	buf = append(buf, le32(7)...)
	for i := 0; i < 5; i++ {
		buf = append(buf, filled(32, byte(i+1))...)
	}

	var key SaplingExtendedSpendingKey
	require.NoError(t, parser.FromBytes(buf, &key))

	assert.Equal(t, uint8(3), key.Depth)
	assert.Equal(t, uint32(7), key.ChildIndex)
	assert.Equal(t, filled(32, 3), key.Nsk[:])
}

func TestNetworkInfo(t *testing.T) {
	t.Run("zcash mainnet", func(t *testing.T) {
		buf := append(compactString("Zcash"), compactString("main")...)

		var info NetworkInfo
		require.NoError(t, parser.FromBytes(buf, &info))
		assert.Equal(t, "main", info.Network())
	})

	t.Run("foreign chain", func(t *testing.T) {
		buf := append(compactString("Bitcoin"), compactString("main")...)

		var info NetworkInfo
		err := parser.FromBytes(buf, &info)
		assert.ErrorIs(t, err, ErrNotZcashNetworkInfo)
	})
}

func TestMnemonicSeedValidate(t *testing.T) {
	const phrase = "abandon abandon abandon abandon abandon abandon " +
		"abandon abandon abandon abandon abandon about"
	buf := append(le32(LanguageEnglish), compactString(phrase)...)

	var seed MnemonicSeed
	require.NoError(t, parser.FromBytes(buf, &seed))
	assert.Equal(t, phrase, seed.Phrase())
	assert.NoError(t, seed.Validate())

	t.Run("gibberish phrase", func(t *testing.T) {
		bad := append(le32(LanguageEnglish), compactString("not a real phrase")...)

		var seed MnemonicSeed
		require.NoError(t, parser.FromBytes(bad, &seed))
		assert.Error(t, seed.Validate())
	})
}

func TestMnemonicHDChain(t *testing.T) {
	buf := le32(2)
	buf = append(buf, filled(32, 0x5a)...)
	buf = append(buf, le64(1700000000)...)
	buf = append(buf, le32(1)...)
	buf = append(buf, le32(10)...)
	buf = append(buf, le32(4)...)
	buf = append(buf, le32(2)...)
	buf = append(buf, 1)

	var chain MnemonicHDChain
	require.NoError(t, parser.FromBytes(buf, &chain))

	assert.Equal(t, int32(2), chain.Version)
	assert.Equal(t, uint32(10), chain.LegacyTKeyExternalCounter)
	assert.True(t, chain.MnemonicSeedBackupConfirmed)
}

func TestBlockLocator(t *testing.T) {
	first, second := filled(32, 0x01), filled(32, 0x02)
	buf := parser.AppendCompactSize(nil, 2)
	buf = append(buf, first...)
	buf = append(buf, second...)

	var locator BlockLocator
	require.NoError(t, parser.FromBytes(buf, &locator))
	require.Len(t, locator, 2)
	assert.Equal(t, first, locator[0][:])
	assert.False(t, locator.IsEmpty())
}

func TestContextualWrapping(t *testing.T) {
	// A short metadata record fails deep inside the decode; the underflow
	// must survive the context wrapping.
	var metadata KeyMetadata
	err := parser.FromBytes(le32(12), &metadata)

	var underflow *parser.BufferUnderflowError
	require.True(t, errors.As(err, &underflow))
	assert.Contains(t, err.Error(), "Parsing key metadata create time")
}
