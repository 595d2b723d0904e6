package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecAddressDeterministic(t *testing.T) {
	addr1 := ExecAddress("vault-authority")
	addr2 := ExecAddress("vault-authority")
	assert.Equal(t, addr1, addr2)

	//不同种子派生不同地址
	other := ExecAddress("global-authority")
	assert.NotEqual(t, addr1, other)
}

func TestExecAddressValid(t *testing.T) {
	addr := ExecAddress("player:vault-authority:42")
	require.NoError(t, CheckAddress(addr))
}

func TestNewAddrFromString(t *testing.T) {
	addr := ExecAddress("vault-authority")
	a, err := NewAddrFromString(addr)
	require.NoError(t, err)
	assert.Equal(t, addr, a.String())
}

func TestCheckAddressBad(t *testing.T) {
	assert.Error(t, CheckAddress("0OIl"))
	assert.Error(t, CheckAddress("1111"))

	//篡改一个字符后校验和不再匹配
	addr := ExecAddress("vault-authority")
	tampered := []byte(addr)
	if tampered[len(tampered)-1] == 'a' {
		tampered[len(tampered)-1] = 'b'
	} else {
		tampered[len(tampered)-1] = 'a'
	}
	assert.Error(t, CheckAddress(string(tampered)))
}

func TestPubKeyToAddress(t *testing.T) {
	pub := ExecPubKey("vault-authority")
	assert.Len(t, pub, 32)
	addr := PubKeyToAddress(pub)
	assert.Equal(t, ExecAddress("vault-authority"), addr.String())
}
