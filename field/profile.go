package field

import (
	"crypto/elliptic"
	"fmt"
	"math/big"
	"sort"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/izouxv/goShamir/utils"
)

// DefaultProfile is the name of the production profile used when none is
// configured.
const DefaultProfile = "modp3072"

// Profile describes a prime field by its modulus. Profiles are plain data;
// the same engine runs on all of them.
type Profile struct {
	Name     string
	Prime    *big.Int
	BitLen   int
	Insecure bool
}

// HexWidth is the number of hex digits of an encoded field value.
func (p *Profile) HexWidth() int {
	return (p.BitLen + 3) / 4
}

// ByteLen is the byte length of a fixed-width big-endian field value.
func (p *Profile) ByteLen() int {
	return (p.BitLen + 7) / 8
}

// TokenLen is the length of a share token: 4 index digits plus the value.
func (p *Profile) TokenLen() int {
	return 4 + p.HexWidth()
}

// MaxSecretLen is the largest secret that is guaranteed to fit once framed
// with its uvarint length prefix.
func (p *Profile) MaxSecretLen() int {
	room := (p.BitLen - 1) / 8
	for l := room; l > 0; l-- {
		if utils.UvarintLen(uint64(l))+l <= room {
			return l
		}
	}
	return 0
}

// Validate checks that the profile describes a usable prime field: an odd
// prime modulus whose bit length matches BitLen.
func (p *Profile) Validate() error {
	if p.Prime == nil || p.Prime.Cmp(big.NewInt(2)) <= 0 {
		return fmt.Errorf("profile %q: modulus must be an odd prime", p.Name)
	}
	if p.BitLen != p.Prime.BitLen() {
		return fmt.Errorf("profile %q: BitLen is %d, modulus has %d bits", p.Name, p.BitLen, p.Prime.BitLen())
	}
	// Baillie-PSW; exact below 2^64 and without known counterexamples above.
	if !p.Prime.ProbablyPrime(0) {
		return fmt.Errorf("profile %q: modulus is not prime", p.Name)
	}
	return nil
}

func (p *Profile) String() string {
	return fmt.Sprintf("%s (%d bits)", p.Name, p.BitLen)
}

func newProfile(name string, prime *big.Int) *Profile {
	return &Profile{
		Name:   name,
		Prime:  new(big.Int).Set(prime),
		BitLen: prime.BitLen(),
	}
}

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("field: invalid hex modulus")
	}
	return n
}

// RFC 3526 group 14.
var modp2048 = mustHex("FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD1" +
	"29024E088A67CC74020BBEA63B139B22514A08798E3404DD" +
	"EF9519B3CD3A431B302B0A6DF25F14374FE1356D6D51C245" +
	"E485B576625E7EC6F44C42E9A637ED6B0BFF5CB6F406B7ED" +
	"EE386BFB5A899FA5AE9F24117C4B1FE649286651ECE45B3D" +
	"C2007CB8A163BF0598DA48361C55D39A69163FA8FD24CF5F" +
	"83655D23DCA3AD961C62F356208552BB9ED529077096966D" +
	"670C354E4ABC9804F1746C08CA18217C32905E462E36CE3B" +
	"E39E772C180E86039B2783A2EC07A28FB5C55DF06F4C52C9" +
	"DE2BCBF6955817183995497CEA956AE515D2261898FA0510" +
	"15728E5A8AACAA68FFFFFFFFFFFFFFFF")

// RFC 3526 group 15.
var modp3072 = mustHex("FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD1" +
	"29024E088A67CC74020BBEA63B139B22514A08798E3404DD" +
	"EF9519B3CD3A431B302B0A6DF25F14374FE1356D6D51C245" +
	"E485B576625E7EC6F44C42E9A637ED6B0BFF5CB6F406B7ED" +
	"EE386BFB5A899FA5AE9F24117C4B1FE649286651ECE45B3D" +
	"C2007CB8A163BF0598DA48361C55D39A69163FA8FD24CF5F" +
	"83655D23DCA3AD961C62F356208552BB9ED529077096966D" +
	"670C354E4ABC9804F1746C08CA18217C32905E462E36CE3B" +
	"E39E772C180E86039B2783A2EC07A28FB5C55DF06F4C52C9" +
	"DE2BCBF6955817183995497CEA956AE515D2261898FA0510" +
	"15728E5A8AAAC42DAD33170D04507A33A85521ABDF1CBA64" +
	"ECFB850458DBEF0A8AEA71575D060C7DB3970F85A6E1E4C7" +
	"ABF5AE8CDB0933D71E8C94E04A25619DCEE3D2261AD2EE6B" +
	"F12FFA06D98A0864D87602733EC86A64521F2B18177B200C" +
	"BBE117577A615D6C770988C0BAD946E208E24FA074E5AB31" +
	"43DB5BFCE0FD108E4B82D120A93AD2CAFFFFFFFFFFFFFFFF")

// Mersenne prime 2^61-1. Far too small to protect anything.
var demoPrime = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 61), big.NewInt(1))

// Profiles is the registry of production profiles, keyed by name. The
// demonstration profile is deliberately absent.
var Profiles = make(map[string]*Profile)

// ProfileRegist registers a profile so it can be looked up by name.
func ProfileRegist(p *Profile) {
	if p.Insecure {
		panic("field: insecure profiles cannot be registered")
	}
	if _, ok := Profiles[p.Name]; ok {
		panic("profile already registered")
	}
	Profiles[p.Name] = p
}

// ProfileGet retrieves a registered profile by its name, or nil.
func ProfileGet(name string) *Profile {
	return Profiles[name]
}

// ProfileNames returns the registered names in sorted order.
func ProfileNames() []string {
	names := make([]string, 0, len(Profiles))
	for name := range Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the production default profile.
func Default() *Profile {
	return ProfileGet(DefaultProfile)
}

// InsecureDemo returns the demonstration profile. It offers no real
// confidentiality and holds secrets of at most a few bytes; the engine logs a
// warning every time it is used.
func InsecureDemo() *Profile {
	p := newProfile("insecure-demo", demoPrime)
	p.Insecure = true
	return p
}

func init() {
	ProfileRegist(newProfile("modp2048", modp2048))
	ProfileRegist(newProfile("modp3072", modp3072))
	// Curve group orders are prime, which makes them usable fields.
	ProfileRegist(newProfile("secp256k1", secp256k1.S256().Params().N))
	ProfileRegist(newProfile("p256", elliptic.P256().Params().N))
	ProfileRegist(newProfile("p384", elliptic.P384().Params().N))
	ProfileRegist(newProfile("p521", elliptic.P521().Params().N))
}
