package chip

import "fmt"

// ProductIDAddress is the memory-mapped location of the product ID
// register that identifies the silicon.
const ProductIDAddress = 0xE0042000

// Family describes the properties shared by all devices of one AT32
// family: where the flash controller registers live and where the user
// system data (option byte) region is mapped.
type Family struct {
	// RegisterBase is the base address of the flash controller aperture
	RegisterBase uint32

	// OptionByteBase is the address of the user system data region
	OptionByteBase uint32

	// Name is the family name, e.g. "AT32F403A"
	Name string
}

// Known device families.
var (
	AT32F403  = &Family{0x40022000, 0x1FFFF800, "AT32F403"}
	AT32F413  = &Family{0x40022000, 0x1FFFF800, "AT32F413"}
	AT32F415  = &Family{0x40022000, 0x1FFFF800, "AT32F415"}
	AT32F403A = &Family{0x40022000, 0x1FFFF800, "AT32F403A"}
	AT32F407  = &Family{0x40022000, 0x1FFFF800, "AT32F407"}
	AT32F421  = &Family{0x40022000, 0x1FFFF800, "AT32F421"}
	AT32F435  = &Family{0x40023C00, 0x1FFFC000, "AT32F435"}
	AT32F437  = &Family{0x40023C00, 0x1FFFC000, "AT32F437"}
	AT32F425  = &Family{0x40022000, 0x1FFFF800, "AT32F425"}
	AT32L021  = &Family{0x40022000, 0x1FFFF800, "AT32L021"}
	AT32WB415 = &Family{0x40022000, 0x1FFFF800, "AT32WB415"}
	AT32F423  = &Family{0x40023C00, 0x1FFFF800, "AT32F423"}
)

// Descriptor describes one catalog entry: a device package with its flash
// geometry and family register layout.
type Descriptor struct {
	// ProductID is the value read from ProductIDAddress
	ProductID uint32

	// FlashSizeKB is the main flash array size in KiB
	FlashSizeKB uint32

	// SectorSize is the erase sector size in bytes
	SectorSize uint32

	// Family holds the register layout shared by the device family
	Family *Family

	// Suffix is the package/speed suffix appended to the family name
	Suffix string
}

// Name returns the full device name, e.g. "AT32F403ACCT7".
func (d *Descriptor) Name() string {
	return d.Family.Name + d.Suffix
}

// UnknownDeviceError indicates that a product ID has no catalog entry.
type UnknownDeviceError struct {
	ProductID uint32
}

func (e *UnknownDeviceError) Error() string {
	return fmt.Sprintf("unknown device: product ID 0x%08X not in catalog", e.ProductID)
}

// Lookup finds the catalog entry for a product ID. Matching is exact;
// when several packages share an ID the first entry wins.
//
// Returns an *UnknownDeviceError if the ID is not in the catalog.
func Lookup(productID uint32) (*Descriptor, error) {
	for i := range catalog {
		if catalog[i].ProductID == productID {
			return &catalog[i], nil
		}
	}
	return nil, &UnknownDeviceError{ProductID: productID}
}
