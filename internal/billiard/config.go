package billiard

import (
	"encoding/json"
	"fmt"
	"os"
)

// JSON configuration, mirroring the teacher's json_config.go exactly:
// XxxCfg structs with encoding/json tags, a Build() (*T, error) validating
// constructor per obstacle kind, and a loadConfig that validates. No defaults
// are filled at load time; the target-kind default is applied by
// RunCfg.BuildTargetKind.

type Vec2Cfg struct {
	X Real `json:"x"`
	Y Real `json:"y"`
}

func (c Vec2Cfg) vec() Vec2 { return Vec2{c.X, c.Y} }

type WallCfg struct {
	Name        string  `json:"name"`
	Start       Vec2Cfg `json:"start"`
	End         Vec2Cfg `json:"end"`
	Normal      Vec2Cfg `json:"normal"`
	IsDoor      bool    `json:"isDoor,omitempty"`
	Translation Vec2Cfg `json:"translation,omitempty"`
}

func (c WallCfg) BuildInfinite() (*InfiniteWall, error) {
	return NewInfiniteWall(c.Name, c.Start.vec(), c.End.vec(), c.Normal.vec()), nil
}

func (c WallCfg) BuildFinite() (*FiniteWall, error) {
	return NewFiniteWall(c.Name, c.Start.vec(), c.End.vec(), c.Normal.vec(), c.IsDoor), nil
}

func (c WallCfg) BuildPeriodic() (*PeriodicWall, error) {
	if c.Translation.X == 0 && c.Translation.Y == 0 {
		return nil, fmt.Errorf("periodic wall %q needs a non-zero translation", c.Name)
	}
	return NewPeriodicWall(c.Name, c.Start.vec(), c.End.vec(), c.Translation.vec()), nil
}

func (c WallCfg) BuildRandom() (*RandomWall, error) {
	return NewRandomWall(c.Name, c.Start.vec(), c.End.vec(), c.Normal.vec()), nil
}

func (c WallCfg) BuildSplitter() (*SplitterWall, error) {
	return NewSplitterWall(c.Name, c.Start.vec(), c.End.vec(), c.Normal.vec()), nil
}

type DiskCfg struct {
	Name   string  `json:"name"`
	Center Vec2Cfg `json:"center"`
	Radius Real    `json:"radius"`
}

func (c DiskCfg) validate() error {
	if c.Radius <= 0 {
		return fmt.Errorf("disk %q radius must be > 0, got %v", c.Name, c.Radius)
	}
	return nil
}

func (c DiskCfg) Build() (*Disk, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	return NewDisk(c.Name, c.Center.vec(), c.Radius), nil
}

func (c DiskCfg) BuildRandom() (*RandomDisk, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	return NewRandomDisk(c.Name, c.Center.vec(), c.Radius), nil
}

func (c DiskCfg) BuildAntidot() (*Antidot, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	return NewAntidot(c.Name, c.Center.vec(), c.Radius), nil
}

type EllipseCfg struct {
	Name     string  `json:"name"`
	Center   Vec2Cfg `json:"center"`
	A        Real    `json:"a"`
	B        Real    `json:"b"`
	AngleDeg Real    `json:"angleDeg,omitempty"`
}

func (c EllipseCfg) Build() (*Ellipse, error) {
	if c.A <= 0 || c.B <= 0 {
		return nil, fmt.Errorf("ellipse %q semi-axes must be > 0, got a=%v b=%v", c.Name, c.A, c.B)
	}
	const deg = 3.141592653589793 / 180
	return NewEllipse(c.Name, c.Center.vec(), c.A, c.B, c.AngleDeg*deg), nil
}

type SemicircleCfg struct {
	Name    string  `json:"name"`
	Center  Vec2Cfg `json:"center"`
	Radius  Real    `json:"radius"`
	Facedir Vec2Cfg `json:"facedir"`
}

func (c SemicircleCfg) Build() (*Semicircle, error) {
	if c.Radius <= 0 {
		return nil, fmt.Errorf("semicircle %q radius must be > 0, got %v", c.Name, c.Radius)
	}
	return NewSemicircle(c.Name, c.Center.vec(), c.Radius, c.Facedir.vec()), nil
}

type PolygonCfg struct {
	Name     string    `json:"name"`
	Vertices []Vec2Cfg `json:"vertices"`
}

func (c PolygonCfg) Build() (*PolygonWall, error) {
	vertices := make([]Vec2, len(c.Vertices))
	for i, v := range c.Vertices {
		vertices[i] = v.vec()
	}
	return NewPolygonWall(c.Name, vertices)
}

// ObstacleCfg is a tagged JSON obstacle entry; Kind selects which Build
// method runs. Exactly one geometry-specific Cfg field should be populated
// for the given Kind.
type ObstacleCfg struct {
	Kind       string         `json:"kind"`
	Wall       *WallCfg       `json:"wall,omitempty"`
	Disk       *DiskCfg       `json:"disk,omitempty"`
	Ellipse    *EllipseCfg    `json:"ellipse,omitempty"`
	Semicircle *SemicircleCfg `json:"semicircle,omitempty"`
	Polygon    *PolygonCfg    `json:"polygon,omitempty"`
}

func (c ObstacleCfg) Build() (Obstacle, error) {
	switch c.Kind {
	case "infinite_wall":
		if c.Wall == nil {
			return nil, fmt.Errorf("obstacle kind %q needs a wall config", c.Kind)
		}
		return c.Wall.BuildInfinite()
	case "finite_wall":
		if c.Wall == nil {
			return nil, fmt.Errorf("obstacle kind %q needs a wall config", c.Kind)
		}
		return c.Wall.BuildFinite()
	case "periodic_wall":
		if c.Wall == nil {
			return nil, fmt.Errorf("obstacle kind %q needs a wall config", c.Kind)
		}
		return c.Wall.BuildPeriodic()
	case "random_wall":
		if c.Wall == nil {
			return nil, fmt.Errorf("obstacle kind %q needs a wall config", c.Kind)
		}
		return c.Wall.BuildRandom()
	case "splitter_wall":
		if c.Wall == nil {
			return nil, fmt.Errorf("obstacle kind %q needs a wall config", c.Kind)
		}
		return c.Wall.BuildSplitter()
	case "disk":
		if c.Disk == nil {
			return nil, fmt.Errorf("obstacle kind %q needs a disk config", c.Kind)
		}
		return c.Disk.Build()
	case "random_disk":
		if c.Disk == nil {
			return nil, fmt.Errorf("obstacle kind %q needs a disk config", c.Kind)
		}
		return c.Disk.BuildRandom()
	case "antidot":
		if c.Disk == nil {
			return nil, fmt.Errorf("obstacle kind %q needs a disk config", c.Kind)
		}
		return c.Disk.BuildAntidot()
	case "ellipse":
		if c.Ellipse == nil {
			return nil, fmt.Errorf("obstacle kind %q needs an ellipse config", c.Kind)
		}
		return c.Ellipse.Build()
	case "semicircle":
		if c.Semicircle == nil {
			return nil, fmt.Errorf("obstacle kind %q needs a semicircle config", c.Kind)
		}
		return c.Semicircle.Build()
	case "polygon":
		if c.Polygon == nil {
			return nil, fmt.Errorf("obstacle kind %q needs a polygon config", c.Kind)
		}
		return c.Polygon.Build()
	default:
		return nil, fmt.Errorf("unknown obstacle kind %q", c.Kind)
	}
}

// BilliardCfg assembles a Billiard from an ordered list of obstacle entries.
type BilliardCfg struct {
	Obstacles []ObstacleCfg `json:"obstacles"`
}

func (c BilliardCfg) Build() (*Billiard, error) {
	obstacles := make([]Obstacle, len(c.Obstacles))
	for i, oc := range c.Obstacles {
		o, err := oc.Build()
		if err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i, err)
		}
		obstacles[i] = o
	}
	return NewBilliard(obstacles...), nil
}

// RunCfg assembles the pieces a cmd/billiard-run invocation needs: a
// billiard, an initial particle, and target parameters.
type RunCfg struct {
	Billiard  BilliardCfg `json:"billiard"`
	Pos       Vec2Cfg     `json:"pos"`
	Vel       Vec2Cfg     `json:"vel"`
	Omega     Real        `json:"omega,omitempty"` // 0 means straight particle
	Target    Real        `json:"target"`
	TargetKind string     `json:"targetKind,omitempty"` // "time" (default) or "collisions"
	Seed      int64       `json:"seed,omitempty"`
}

func (c RunCfg) BuildParticle() Particle {
	if c.Omega != 0 {
		return NewMagneticParticle(c.Pos.vec(), c.Vel.vec(), c.Omega)
	}
	return NewStraightParticle(c.Pos.vec(), c.Vel.vec())
}

func (c RunCfg) BuildTargetKind() TargetKind {
	if c.TargetKind == "collisions" {
		return TargetCollisions
	}
	return TargetTime
}

// Build assembles the billiard, initial particle, and target parameters a
// run needs in one call.
func (c RunCfg) Build() (Particle, *Billiard, Real, TargetKind, error) {
	bd, err := c.Billiard.Build()
	if err != nil {
		return nil, nil, 0, 0, err
	}
	return c.BuildParticle(), bd, c.Target, c.BuildTargetKind(), nil
}

// LoadConfig reads a RunCfg from path and checks that it has at least one
// obstacle and a positive target.
func LoadConfig(path string) (*RunCfg, error) {
	return loadConfig(path)
}

func loadConfig(path string) (*RunCfg, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg RunCfg
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Billiard.Obstacles) == 0 {
		return nil, fmt.Errorf("config has no obstacles")
	}
	if cfg.Target <= 0 {
		return nil, fmt.Errorf("config target must be > 0, got %v", cfg.Target)
	}
	debugLog("loaded config from %s: %d obstacles, target=%v (%s)", path, len(cfg.Billiard.Obstacles), cfg.Target, cfg.TargetKind)
	return &cfg, nil
}
