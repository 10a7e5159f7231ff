package config

type ConfigurableLoop string

const (
	ConfigurableLoopRenderQueue ConfigurableLoop = "renderQueue"
	ConfigurableLoopCacheSweep  ConfigurableLoop = "cacheSweep"
)
