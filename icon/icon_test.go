package icon

import (
	"fmt"
	"testing"

	"github.com/miru-cli/miru/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given every registered icon", t, func() {
		for i := range icons {
			Convey(fmt.Sprintf("Icon %d renders in each variant", i), func() {
				for _, variant := range AvailableVariants() {
					viper.Set(key.IconsVariant, variant)
					So(Get(i), ShouldNotBeEmpty)
				}
			})
		}

		Convey("It renders nothing for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(Success), ShouldBeEmpty)
		})
	})

	Convey("An unregistered icon renders nothing", t, func() {
		viper.Set(key.IconsVariant, plain)
		So(Get(Icon(999)), ShouldBeEmpty)
	})
}
