package payoutdto

type AdminPayoutsInput struct {
	Search     string
	StoreName  string
	VendorName string
	Status     string
	Page       int
	PerPage    int
}
