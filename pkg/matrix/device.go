package matrix

// DeviceMatrix is what a stamp writes into.
type DeviceMatrix interface {
	AddElement(i, j int, value float64) // 1-based indexing, 0 is ground
	AddRHS(i int, value float64)
}
