package roster

// IDAllocator выдаёт монотонно растущие идентификаторы. Идентификаторы не переиспользуются.
type IDAllocator struct {
	last int
}

// NewIDAllocator начинает выдачу с after+1
func NewIDAllocator(after int) *IDAllocator {
	return &IDAllocator{last: after}
}

func (a *IDAllocator) Next() int {
	a.last++
	return a.last
}

// Last последний выданный (или стартовый) идентификатор
func (a *IDAllocator) Last() int {
	return a.last
}

// SeedAtLeast сдвигает счётчик вперёд, если n больше текущего значения
func (a *IDAllocator) SeedAtLeast(n int) {
	if n > a.last {
		a.last = n
	}
}
