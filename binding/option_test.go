package binding

import (
	"context"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestStrictOption(t *testing.T) {
	convey.Convey("strict_option", t, func() {
		ctx := context.Background()

		convey.Convey("默认严格模式，未知绑定名报错", func() {
			err := New().Launch(ctx, "nope")
			convey.So(err, convey.ShouldNotBeNil)
		})

		convey.Convey("宽松模式，未知绑定名静默返回", func() {
			err := New(WithStrict(false)).Launch(ctx, "nope")
			convey.So(err, convey.ShouldBeNil)
		})

		convey.Convey("显式开启严格模式与默认一致", func() {
			err := New(WithStrict(true)).Launch(ctx, "nope")
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}
