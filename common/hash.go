package common

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

func sha2Hash(b []byte, out []byte) {
	s := sha256.New()
	s.Write(b[:])
	tmp := s.Sum(nil)
	s.Reset()
	s.Write(tmp)
	copy(out[:], s.Sum(nil))
}

// Sha2Sum Returns hash: SHA256( SHA256( data ) )
func Sha2Sum(b []byte) (out [32]byte) {
	sha2Hash(b, out[:])
	return
}

func rimpHash(in []byte, out []byte) {
	sha := sha256.New()
	sha.Write(in)
	rim := ripemd160.New()
	rim.Write(sha.Sum(nil)[:])
	copy(out, rim.Sum(nil))
}

// Rimp160AfterSha256 Returns hash: RIMP160( SHA256( data ) )
func Rimp160AfterSha256(b []byte) (out [20]byte) {
	rimpHash(b, out[:])
	return
}
