// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package address base58check addresses for accounts and executors
package address

import (
	"bytes"
	"encoding/hex"

	"github.com/33cn/vegas/common"
	"github.com/decred/base58"
	farm "github.com/dgryski/go-farm"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

var addrSeed = []byte("address seed bytes for public key")
var addressCache *lru.Cache
var checkAddressCache *lru.Cache

//MaxExecNameLength 执行器名最大长度
const MaxExecNameLength = 100

var (
	//ErrDecode base58 decode failed
	ErrDecode = errors.New("ErrAddressDecode")
	//ErrLength decoded address is not 25 bytes
	ErrLength = errors.New("ErrAddressLength")
	//ErrChecksum checksum mismatch
	ErrChecksum = errors.New("ErrAddressChecksum")
)

func init() {
	addressCache, _ = lru.New(10240)
	checkAddressCache, _ = lru.New(10240)
}

//ExecPubKey 计算执行器公钥
func ExecPubKey(name string) []byte {
	if len(name) > MaxExecNameLength {
		panic("name too long")
	}
	var bname [200]byte
	buf := append(bname[:0], addrSeed...)
	buf = append(buf, []byte(name)...)
	hash := common.Sha2Sum(buf)
	return hash[:]
}

type execKey uint64

// cache 的 key 用名字的 farm hash, 冲突时比对名字
type execEntry struct {
	name string
	addr string
}

//ExecAddress 计算量有点大，做一次cache
func ExecAddress(name string) string {
	key := execKey(farm.Hash64([]byte(name)))
	if value, ok := addressCache.Get(key); ok {
		if entry := value.(*execEntry); entry.name == name {
			return entry.addr
		}
	}
	addrstr := PubKeyToAddress(ExecPubKey(name)).String()
	addressCache.Add(key, &execEntry{name: name, addr: addrstr})
	return addrstr
}

//PubKeyToAddress 公钥转为地址
func PubKeyToAddress(in []byte) *Address {
	a := new(Address)
	a.Pubkey = make([]byte, len(in))
	copy(a.Pubkey[:], in[:])
	a.Version = 0
	a.Hash160 = common.Rimp160AfterSha256(in)
	return a
}

//CheckAddress 检查地址
func CheckAddress(addr string) (e error) {
	if value, ok := checkAddressCache.Get(addr); ok {
		if value == nil {
			return nil
		}
		return value.(error)
	}
	_, e = NewAddrFromString(addr)
	checkAddressCache.Add(addr, e)
	return
}

//NewAddrFromString new 地址
func NewAddrFromString(hs string) (*Address, error) {
	dec := base58.Decode(hs)
	if len(dec) == 0 {
		return nil, errors.Wrapf(ErrDecode, "addr=%s", hs)
	}
	if len(dec) != 25 {
		return nil, errors.Wrapf(ErrLength, "addr=%s", hex.EncodeToString(dec))
	}
	sh := common.Sha2Sum(dec[0:21])
	if !bytes.Equal(sh[:4], dec[21:25]) {
		return nil, errors.Wrapf(ErrChecksum, "addr=%s", hs)
	}
	a := new(Address)
	a.Version = dec[0]
	copy(a.Hash160[:], dec[1:21])
	a.Checksum = make([]byte, 4)
	copy(a.Checksum, dec[21:25])
	a.Enc58str = hs
	return a, nil
}

//Address 地址
type Address struct {
	Version  byte
	Hash160  [20]byte
	Checksum []byte
	Pubkey   []byte
	Enc58str string
}

func (a *Address) String() string {
	if a.Enc58str == "" {
		var ad [25]byte
		ad[0] = a.Version
		copy(ad[1:21], a.Hash160[:])
		if a.Checksum == nil {
			sh := common.Sha2Sum(ad[0:21])
			a.Checksum = make([]byte, 4)
			copy(a.Checksum, sh[:4])
		}
		copy(ad[21:25], a.Checksum[:])
		a.Enc58str = base58.Encode(ad[:])
	}
	return a.Enc58str
}

//FromSeed deterministic address for a seed phrase, used for dev accounts
func FromSeed(seed string) string {
	return PubKeyToAddress(common.Sha256([]byte(seed))).String()
}
