package schemes_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestSchemes(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Schemes Suite")
}
