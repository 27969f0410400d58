package cache_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Xinyue-Yang/Cache-Simulator/cache"
)

var _ = Describe("Config", func() {
	Describe("Validate", func() {
		It("should accept a typical geometry", func() {
			config := cache.Config{SetBits: 4, BlockBits: 4, Associativity: 1}
			Expect(config.Validate()).To(Succeed())
		})

		It("should accept a fully-associative single-set geometry", func() {
			config := cache.Config{SetBits: 0, BlockBits: 0, Associativity: 8}
			Expect(config.Validate()).To(Succeed())
		})

		It("should reject negative set-index bits", func() {
			config := cache.Config{SetBits: -1, BlockBits: 4, Associativity: 1}
			Expect(config.Validate()).NotTo(Succeed())
		})

		It("should reject negative block-offset bits", func() {
			config := cache.Config{SetBits: 4, BlockBits: -1, Associativity: 1}
			Expect(config.Validate()).NotTo(Succeed())
		})

		It("should reject zero associativity", func() {
			config := cache.Config{SetBits: 4, BlockBits: 4, Associativity: 0}
			Expect(config.Validate()).NotTo(Succeed())
		})

		It("should reject geometries wider than the address space", func() {
			config := cache.Config{SetBits: 33, BlockBits: 32, Associativity: 1}
			Expect(config.Validate()).NotTo(Succeed())
		})

		It("should accept a geometry that exactly fills the address space", func() {
			config := cache.Config{SetBits: 32, BlockBits: 32, Associativity: 1}
			Expect(config.Validate()).To(Succeed())
		})

		It("should reject a set count that does not fit in an int", func() {
			Expect(cache.Config{SetBits: 63, BlockBits: 1, Associativity: 1}.Validate()).NotTo(Succeed())
			Expect(cache.Config{SetBits: 64, BlockBits: 0, Associativity: 1}.Validate()).NotTo(Succeed())
		})

		It("should reject a block size that does not fit in an int", func() {
			Expect(cache.Config{SetBits: 0, BlockBits: 63, Associativity: 1}.Validate()).NotTo(Succeed())
			Expect(cache.Config{SetBits: 0, BlockBits: 64, Associativity: 1}.Validate()).NotTo(Succeed())
		})
	})

	Describe("Derived geometry", func() {
		It("should compute the set count and block size", func() {
			config := cache.Config{SetBits: 4, BlockBits: 6, Associativity: 2}
			Expect(config.NumSets()).To(Equal(16))
			Expect(config.BlockSize()).To(Equal(64))
		})
	})

	Describe("Decode", func() {
		It("should split a 16-set, 16-byte-block address", func() {
			config := cache.Config{SetBits: 4, BlockBits: 4, Associativity: 1}

			tag, setIndex := config.Decode(0x0)
			Expect(tag).To(Equal(uint64(0)))
			Expect(setIndex).To(Equal(0))

			tag, setIndex = config.Decode(0x10)
			Expect(tag).To(Equal(uint64(0)))
			Expect(setIndex).To(Equal(1))

			tag, setIndex = config.Decode(0x20)
			Expect(tag).To(Equal(uint64(0)))
			Expect(setIndex).To(Equal(2))

			tag, setIndex = config.Decode(0x12345678)
			Expect(tag).To(Equal(uint64(0x123456)))
			Expect(setIndex).To(Equal(7))
		})

		It("should treat the whole address as tag when s and b are zero", func() {
			config := cache.Config{SetBits: 0, BlockBits: 0, Associativity: 2}

			tag, setIndex := config.Decode(0xDEADBEEF)
			Expect(tag).To(Equal(uint64(0xDEADBEEF)))
			Expect(setIndex).To(Equal(0))
		})

		It("should ignore offset bits within one block", func() {
			config := cache.Config{SetBits: 2, BlockBits: 6, Associativity: 2}

			tagA, setA := config.Decode(0x1000)
			tagB, setB := config.Decode(0x103F)
			Expect(tagB).To(Equal(tagA))
			Expect(setB).To(Equal(setA))
		})
	})
})
