package sorts

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestSorts(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Sorts Suite")
}
