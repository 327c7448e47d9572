package pattern

import (
	"math"

	"github.com/kako-jun/yatagarrage/component"
	"github.com/kako-jun/yatagarrage/vmath"
)

// ring fires n bullets evenly spaced from 0°
func ring(c *Context, n int, speed float64, color uint32) {
	for i := 0; i < n; i++ {
		c.Shoot((360/float64(n))*float64(i), speed, color)
	}
}

func circle(id, label, desc string, n int, color uint32) Pattern {
	return Pattern{
		ID: id, Label: label, Description: desc,
		Burst: func(c *Context) { ring(c, n, 200, color) },
	}
}

func fixedAngles(id, label, desc string, angles []float64, color uint32) Pattern {
	return Pattern{
		ID: id, Label: label, Description: desc,
		Burst: func(c *Context) {
			for _, a := range angles {
				c.Shoot(a, 200, color)
			}
		},
	}
}

var catalog = []Pattern{
	{
		ID: "001-line-rain", Label: "001: 直線弾雨", Description: "正面からまっすぐ降り注ぐ基本パターン",
		Burst: func(c *Context) {
			startX := c.X - 180
			for i := 0; i < 13; i++ {
				c.Spawn(Bullet{X: startX + float64(i)*30, Y: c.Y, VY: 260, Color: 0xffff66})
			}
		},
	},
	{
		ID: "002-fan-spread", Label: "002: 扇状拡散", Description: "前方にゆるく拡散する中距離弾",
		Burst: func(c *Context) {
			const n = 18
			for i := 0; i < n; i++ {
				c.Shoot(vmath.Linear(-70, 70, float64(i)/float64(n-1)), 240, 0xffcc66)
			}
		},
	},
	{
		ID: "003-ring-burst", Label: "003: 全方位リング", Description: "一斉に放射される全方位弾",
		Burst: func(c *Context) { ring(c, 26, 200, 0x99e6ff) },
	},
	{
		ID: "004-spiral", Label: "004: スパイラル", Description: "角度が回転する連続発射",
		Stage: &Stage{
			Delay: 70 * ms, Repeat: 35,
			Start: component.EmissionState{Angle: -90},
			Step: func(c *Context, st *component.EmissionState) {
				c.Shoot(st.Angle, 220, 0xff88ff)
				st.Angle += 12
			},
		},
	},
	circle("005-circle-8", "005: 円形8方向", "8方向へ均等に発射", 8, 0xff6666),
	circle("006-circle-16", "006: 円形16方向", "16方向へ均等に発射", 16, 0xff8866),
	circle("007-circle-24", "007: 円形24方向", "24方向へ均等に発射", 24, 0xffaa66),
	circle("008-circle-32", "008: 円形32方向", "32方向へ均等に発射（密集）", 32, 0xffcc66),
	{
		ID: "009-double-spiral", Label: "009: ダブルスパイラル", Description: "2本の螺旋",
		Stage: &Stage{
			Delay: 80 * ms, Repeat: 40,
			Step: func(c *Context, st *component.EmissionState) {
				for i := 0; i < 2; i++ {
					c.Shoot(st.Angle+float64(i)*180, 220, 0xff66ff)
				}
				st.Angle += 15
			},
		},
	},
	{
		ID: "010-triple-spiral", Label: "010: トリプルスパイラル", Description: "3本の螺旋",
		Stage: &Stage{
			Delay: 80 * ms, Repeat: 40,
			Step: func(c *Context, st *component.EmissionState) {
				for i := 0; i < 3; i++ {
					c.Shoot(st.Angle+float64(i)*120, 220, 0xaa66ff)
				}
				st.Angle += 15
			},
		},
	},
	{
		ID: "011-wave", Label: "011: 波状弾幕", Description: "波のように揺れる弾",
		Burst: func(c *Context) {
			for i := 0; i < 5; i++ {
				offset := math.Sin(float64(i)*0.5) * 50
				c.Spawn(Bullet{X: c.X + offset, Y: c.Y, VY: 200, Color: 0x66ffff})
			}
		},
	},
	{
		ID: "012-random", Label: "012: ランダム弾幕", Description: "ランダムな方向と速度",
		Burst: func(c *Context) {
			for i := 0; i < 10; i++ {
				angle := c.Rand.Float64() * 360
				speed := 150 + c.Rand.Float64()*100
				c.Shoot(angle, speed, 0xffffff)
			}
		},
	},
	fixedAngles("013-cross", "013: 十字型", "上下左右の4方向", []float64{0, 90, 180, 270}, 0xff0000),
	fixedAngles("014-x-pattern", "014: X字型", "斜め4方向", []float64{45, 135, 225, 315}, 0xff4400),
	{
		ID: "015-asterisk", Label: "015: 米字型", Description: "十字+X字の8方向",
		Burst: func(c *Context) {
			for i := 0; i < 8; i++ {
				c.Shoot(float64(i)*45, 200, 0xff8800)
			}
		},
	},
	{
		ID: "016-dense", Label: "016: 密集弾幕", Description: "狭い範囲に密集",
		Burst: func(c *Context) {
			const n = 20
			for i := 0; i < n; i++ {
				c.Shoot(75+(float64(i)-n/2)*3, 200, 0xffdd00)
			}
		},
	},
	{
		ID: "017-sparse", Label: "017: まばら弾幕", Description: "広い範囲にまばら",
		Burst: func(c *Context) {
			for i := 0; i < 4; i++ {
				c.Shoot(20+float64(i)*40, 200, 0xffff00)
			}
		},
	},
	{
		ID: "018-fan-narrow", Label: "018: 扇形集中", Description: "狭い角度で7発",
		Burst: func(c *Context) {
			for i := 0; i < 7; i++ {
				c.Shoot(75+float64(i-3)*8, 200, 0xaaff00)
			}
		},
	},
	{
		ID: "019-fan-wide", Label: "019: 扇形分散", Description: "広い角度で7発",
		Burst: func(c *Context) {
			for i := 0; i < 7; i++ {
				c.Shoot(45+float64(i-3)*25, 200, 0x88ff00)
			}
		},
	},
	{
		ID: "020-double-circle", Label: "020: ダブル円形", Description: "異なる速度で2重の円形",
		Burst: func(c *Context) {
			for _, speed := range []float64{200, 120} {
				color := uint32(0x00ffdd)
				if speed > 150 {
					color = 0x00ff88
				}
				ring(c, 8, speed, color)
			}
		},
	},
	{
		ID: "021-triple-circle", Label: "021: トリプル円形", Description: "異なる速度で3重の円形",
		Burst: func(c *Context) {
			for _, speed := range []float64{200, 140, 80} {
				color := uint32(0x00ffff)
				switch {
				case speed > 150:
					color = 0x00ff44
				case speed > 100:
					color = 0x00ff99
				}
				ring(c, 6, speed, color)
			}
		},
	},
	{
		ID: "022-burst", Label: "022: バースト弾", Description: "3回に分けて8方向へバースト",
		Stage: &Stage{
			Delay: 150 * ms, Repeat: 2,
			Step: func(c *Context, st *component.EmissionState) {
				const n = 8
				for i := 0; i < n; i++ {
					c.Shoot((360.0/n)*float64(i)+float64(st.Count)*10, 200, 0x00ddff)
				}
				st.Count++
			},
		},
	},
	{
		ID: "023-stream", Label: "023: ストリーム弾", Description: "連続して10発を高速発射",
		Stage: &Stage{
			Delay: 50 * ms, Repeat: 9,
			Step: func(c *Context, _ *component.EmissionState) {
				c.Shoot(90+(c.Rand.Float64()-0.5)*10, 220, 0x00aaff)
			},
		},
	},
	{
		ID: "024-explosion", Label: "024: 爆発型", Description: "16方向へランダム速度で爆発",
		Burst: func(c *Context) {
			const n = 16
			for i := 0; i < n; i++ {
				angle := (360.0 / n) * float64(i)
				c.Shoot(angle, 160+c.Rand.Float64()*80, 0xff6600)
			}
		},
	},
	{
		ID: "025-rotating-cw", Label: "025: 回転弾幕(時計)", Description: "6方向が時計回りに回転",
		Stage: &Stage{
			Delay: 100 * ms, Repeat: 30,
			Step: func(c *Context, st *component.EmissionState) {
				const n = 6
				for i := 0; i < n; i++ {
					c.Shoot((360.0/n)*float64(i)+st.Angle, 200, 0xff00ff)
				}
				st.Angle += 6
			},
		},
	},
	{
		ID: "026-rotating-ccw", Label: "026: 回転弾幕(反時計)", Description: "6方向が反時計回りに回転",
		Stage: &Stage{
			Delay: 100 * ms, Repeat: 30,
			Step: func(c *Context, st *component.EmissionState) {
				const n = 6
				for i := 0; i < n; i++ {
					c.Shoot((360.0/n)*float64(i)+st.Angle, 200, 0xdd00ff)
				}
				st.Angle -= 6
			},
		},
	},
	{
		ID: "027-flower", Label: "027: 花弁状", Description: "5つの花弁のような形状",
		Burst: func(c *Context) {
			const petals = 5
			for i := 0; i < petals*3; i++ {
				petal := (360.0 / petals) * math.Floor(float64(i)/3)
				offset := float64(i%3) * 12
				speed := 200 * (1 - float64(i%3)*0.2)
				c.Shoot(petal+offset, speed, 0xff99ff)
			}
		},
	},
	{
		ID: "028-laser-wave", Label: "028: レーザー波", Description: "横一列に並ぶレーザー状",
		Burst: func(c *Context) {
			for i := 0; i < 15; i++ {
				c.Spawn(Bullet{X: c.X + float64(i-7)*15, Y: c.Y, VY: 250, Color: 0x00ffff, Size: 6})
			}
		},
	},
	{
		ID: "029-pinwheel", Label: "029: 風車型", Description: "風車のような回転パターン",
		Stage: &Stage{
			Delay: 60 * ms, Repeat: 50,
			Step: func(c *Context, st *component.EmissionState) {
				const arms = 4
				for i := 0; i < arms; i++ {
					base := (360.0/arms)*float64(i) + st.Angle
					for j := 0; j < 3; j++ {
						c.Shoot(base+float64(j)*15, 180, 0xffaa00)
					}
				}
				st.Angle += 8
			},
		},
	},
	{
		ID: "030-snake", Label: "030: 蛇行弾", Description: "蛇のように曲がりながら進む",
		Stage: &Stage{
			Delay: 100 * ms, Repeat: 20,
			Step: func(c *Context, st *component.EmissionState) {
				c.Shoot(90+math.Sin(st.Phase)*30, 200, 0x99ff00)
				st.Phase += 0.5
			},
		},
	},
	{
		ID: "031-star", Label: "031: 星型", Description: "星のような5方向",
		Burst: func(c *Context) {
			const points = 5
			for i := 0; i < points; i++ {
				c.ShootWith(Bullet{Color: 0xffff00, Size: 8}, -90+(360.0/points)*float64(i), 200)
			}
		},
	},
	{
		ID: "032-cone-up", Label: "032: 上向き円錐", Description: "上方向へ円錐状に拡散",
		Burst: func(c *Context) {
			const n = 12
			for i := 0; i < n; i++ {
				c.Shoot(-120+(float64(i)/(n-1))*60, 220, 0x66ffaa)
			}
		},
	},
	{
		ID: "033-cone-down", Label: "033: 下向き円錐", Description: "下方向へ円錐状に拡散",
		Burst: func(c *Context) {
			const n = 12
			for i := 0; i < n; i++ {
				c.Shoot(60+(float64(i)/(n-1))*60, 220, 0x66aaff)
			}
		},
	},
	{
		ID: "034-curtain", Label: "034: カーテン弾", Description: "縦に並ぶカーテン状",
		Stage: &Stage{
			Delay: 100 * ms, Repeat: 20,
			Start: component.EmissionState{Offset: -200},
			Step: func(c *Context, st *component.EmissionState) {
				c.Spawn(Bullet{X: c.X + st.Offset, Y: c.Y, VY: 180, Color: 0xaaaaff})
				st.Offset += 20
			},
		},
	},
	{
		ID: "035-chaos", Label: "035: カオス", Description: "完全ランダムな弾幕",
		Stage: &Stage{
			Delay: 50 * ms, Repeat: 30,
			Step: func(c *Context, _ *component.EmissionState) {
				angle := c.Rand.Float64() * 360
				speed := 100 + c.Rand.Float64()*150
				x := c.X + (c.Rand.Float64()-0.5)*100
				y := c.Y + (c.Rand.Float64()-0.5)*100
				color := uint32(c.Rand.Float64() * 0xffffff)
				size := 4 + c.Rand.Float64()*6

				rad := vmath.DegToRad(angle)
				c.Spawn(Bullet{
					X: x, Y: y,
					VX: math.Cos(rad) * speed, VY: math.Sin(rad) * speed,
					Color: color, Size: size,
				})
			},
		},
	},
}
