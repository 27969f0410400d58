package refcache_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Xinyue-Yang/Cache-Simulator/cache"
	"github.com/Xinyue-Yang/Cache-Simulator/refcache"
)

var _ = Describe("Refcache", func() {
	Describe("Basic behavior", func() {
		var c *refcache.Cache

		BeforeEach(func() {
			var err error
			c, err = refcache.New(cache.Config{SetBits: 1, BlockBits: 2, Associativity: 2})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should miss on a cold cache and hit afterwards", func() {
			Expect(c.Access(cache.OpLoad, 0x10).Hit).To(BeFalse())
			Expect(c.Access(cache.OpLoad, 0x10).Hit).To(BeTrue())
		})

		It("should account dirty bytes the way the native model does", func() {
			c.Access(cache.OpStore, 0x0)
			Expect(c.Stats().DirtyBytes).To(Equal(uint64(4)))

			c.Access(cache.OpStore, 0x0)
			Expect(c.Stats().DirtyBytes).To(Equal(uint64(4)))

			// Fill the set and evict the dirty line.
			c.Access(cache.OpLoad, 0x8)
			result := c.Access(cache.OpLoad, 0x10)
			Expect(result.Evicted).To(BeTrue())
			Expect(result.EvictedWasDirty).To(BeTrue())

			stats := c.Stats()
			Expect(stats.DirtyBytes).To(Equal(uint64(0)))
			Expect(stats.DirtyBytesEvicted).To(Equal(uint64(4)))
		})

		It("should reset to a cold cache", func() {
			c.Access(cache.OpStore, 0x0)
			c.Reset()
			Expect(c.Stats()).To(Equal(cache.Statistics{}))
			Expect(c.Access(cache.OpLoad, 0x0).Hit).To(BeFalse())
		})
	})

	Describe("Against the native model", func() {
		It("should agree on every access across geometries", func() {
			geometries := []cache.Config{
				{SetBits: 0, BlockBits: 0, Associativity: 1},
				{SetBits: 0, BlockBits: 0, Associativity: 4},
				{SetBits: 2, BlockBits: 2, Associativity: 2},
				{SetBits: 4, BlockBits: 4, Associativity: 1},
				{SetBits: 1, BlockBits: 3, Associativity: 8},
			}

			for _, config := range geometries {
				native, err := cache.New(config)
				Expect(err).NotTo(HaveOccurred())
				reference, err := refcache.New(config)
				Expect(err).NotTo(HaveOccurred())

				rng := rand.New(rand.NewSource(1))
				for i := 0; i < 5000; i++ {
					addr := uint64(rng.Intn(1 << 10))
					op := cache.OpLoad
					if rng.Intn(2) == 0 {
						op = cache.OpStore
					}

					nativeResult := native.Access(op, addr)
					referenceResult := reference.Access(op, addr)
					Expect(referenceResult).To(Equal(nativeResult),
						"access %d (%s %#x) under %+v", i, op, addr, config)
				}

				Expect(reference.Stats()).To(Equal(native.Stats()),
					"final statistics under %+v", config)
			}
		})
	})
})
