package services

// ResolveUnitPrice picks the catalog price that applies to a line item.
// Remote and onsite entries only price their own attendance mode; fixed and
// project entries ignore the mode. Anything else resolves to 0.
func ResolveUnitPrice(entry CatalogEntry, mode string) float64 {
	switch entry.BillingMode {
	case BillingRemote:
		if mode == AttendanceRemote {
			return entry.RemotePrice
		}
	case BillingOnsite:
		if mode == AttendanceOnsite {
			return entry.OnsitePrice
		}
	case BillingFixed:
		return entry.FixedPrice
	case BillingProject:
		return entry.BaseProjectPrice
	}
	return 0
}
