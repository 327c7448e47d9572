package pattern

import (
	"github.com/kako-jun/yatagarrage/component"
	"github.com/kako-jun/yatagarrage/parameter"
	"github.com/kako-jun/yatagarrage/vmath"
)

// EnemyAimedFanID is the default enemy volley; it is never drawn at random
const EnemyAimedFanID = "enemy-aimed-fan"

// behaviorPatterns showcase the continuous projectile behaviors
var behaviorPatterns = []Pattern{
	{
		ID: "036-homing-fan", Label: "036: 追尾扇", Description: "遅れて自機へ曲がる5発",
		Burst: func(c *Context) {
			const n = 5
			for i := 0; i < n; i++ {
				angle := vmath.Linear(60, 120, float64(i)/float64(n-1))
				c.ShootWith(Bullet{Color: 0xff5577, Behaviors: component.BehaviorHoming}, angle, 180)
			}
		},
	},
	{
		ID: "037-wave-stream", Label: "037: うねり流", Description: "揺れながら進む連射",
		Stage: &Stage{
			Delay: 90 * ms, Repeat: 15,
			Step: func(c *Context, _ *component.EmissionState) {
				c.ShootWith(Bullet{Color: 0x55ffcc, Behaviors: component.BehaviorWave}, 90, 190)
			},
		},
	},
	{
		ID: "038-accel-ring", Label: "038: 加速リング", Description: "ゆっくり出て加速する全方位弾",
		Burst: func(c *Context) {
			const n = 12
			for i := 0; i < n; i++ {
				c.ShootWith(Bullet{Color: 0xffaa55, Behaviors: component.BehaviorAccel}, (360.0/n)*float64(i), 60)
			}
		},
	},
	{
		ID: "039-decel-ring", Label: "039: 減速リング", Description: "速く出て減速する全方位弾",
		Burst: func(c *Context) {
			const n = 20
			for i := 0; i < n; i++ {
				c.ShootWith(Bullet{Color: 0x88aaff, Behaviors: component.BehaviorDecel}, (360.0/n)*float64(i), 320)
			}
		},
	},
	{
		ID: "040-converge-ring", Label: "040: 収束リング", Description: "画面中央へ曲がっていく弾",
		Burst: func(c *Context) {
			const n = 16
			for i := 0; i < n; i++ {
				c.ShootWith(Bullet{Color: 0xcc88ff, Behaviors: component.BehaviorConverge}, (360.0/n)*float64(i), 150)
			}
		},
	},
	{
		ID: "041-diverge-star", Label: "041: 発散星", Description: "中央から離れつつ加速する星型",
		Burst: func(c *Context) {
			const n = 8
			for i := 0; i < n; i++ {
				c.ShootWith(Bullet{Color: 0xffee88, Behaviors: component.BehaviorDiverge}, (360.0/n)*float64(i), 120)
			}
		},
	},
	{
		ID: "042-two-stage-ring", Label: "042: 二段リング", Description: "一定時間後に自機へ向き直る",
		Burst: func(c *Context) {
			const n = 10
			for i := 0; i < n; i++ {
				c.ShootWith(Bullet{Color: 0xff7733, Behaviors: component.BehaviorTwoStage}, (360.0/n)*float64(i), 160)
			}
		},
	},
}

// enemyAimedFan is a five-bullet spread centered on the target bearing
// Its bullets live until they leave the enemy bullet bounds
var enemyAimedFan = Pattern{
	ID: EnemyAimedFanID, Label: "敵: 自機狙い", Description: "自機方向へ5発の扇",
	Burst: func(c *Context) {
		base := vmath.Heading(c.TargetX-c.X, c.TargetY-c.Y)
		for i := 0; i < parameter.EnemyFanCount; i++ {
			angle := base + float64(i-parameter.EnemyFanCount/2)*parameter.EnemyFanSpread
			vx, vy := vmath.Polar(angle, parameter.EnemyFanSpeed)
			c.Spawn(Bullet{
				X: c.X, Y: c.Y, VX: vx, VY: vy,
				Color: parameter.EnemyFanColor, Size: parameter.EnemyFanRadius,
				Lifespan: NoLifespan,
			})
		}
	},
}
