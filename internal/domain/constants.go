package domain

// AddonService closed enumeration of extra services a yacht can offer
type AddonService string

const (
	AddonCatering    AddonService = "catering"
	AddonVineBar     AddonService = "vine_bar"
	AddonDrone       AddonService = "drone"
	AddonDecoration  AddonService = "decoration"
	AddonWaterSports AddonService = "water_sports"
)

// KnownAddons список всех поддерживаемых услуг
var KnownAddons = []AddonService{
	AddonCatering,
	AddonVineBar,
	AddonDrone,
	AddonDecoration,
	AddonWaterSports,
}

// IsKnown returns true if the addon is part of the platform catalog
func (a AddonService) IsKnown() bool {
	for _, known := range KnownAddons {
		if a == known {
			return true
		}
	}
	return false
}

// LocationType closed enumeration of supported marina locations
type LocationType string

const (
	LocationDubaiMarina  LocationType = "Dubai Marina"
	LocationPalmJumeirah LocationType = "Palm Jumeirah"
	LocationDubaiHarbour LocationType = "Dubai Harbour"
	LocationPortRashid   LocationType = "Port Rashid"
)

// KnownLocations список всех поддерживаемых локаций
var KnownLocations = []LocationType{
	LocationDubaiMarina,
	LocationPalmJumeirah,
	LocationDubaiHarbour,
	LocationPortRashid,
}

// IsKnown returns true if the location is supported by the platform
func (l LocationType) IsKnown() bool {
	for _, known := range KnownLocations {
		if l == known {
			return true
		}
	}
	return false
}

// Role пользовательская роль, закрытый набор
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleOwner      Role = "owner"
	RoleAgent      Role = "agent"
	RoleSuperAgent Role = "super-agent"
	RoleAdmin      Role = "admin"
)

// IsAgent returns true for roles entitled to a commission discount
func (r Role) IsAgent() bool {
	return r == RoleAgent || r == RoleSuperAgent
}

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// Currency of all amounts handled by the platform
const Currency = "INR"
