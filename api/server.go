package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matt-g-everett/ledtween/stream"
	"github.com/matt-g-everett/ledtween/tween"
)

// Api serves the web client and the animation control endpoints.
type Api struct {
	controller *stream.Controller
	listen     string
	staticDir  string
}

// NewApi creates an instance of an Api.
func NewApi(controller *stream.Controller, listen string, staticDir string) *Api {
	a := new(Api)
	a.controller = controller
	a.listen = listen
	a.staticDir = staticDir
	return a
}

// Serve runs the HTTP server. It blocks.
func (a *Api) Serve() error {
	router := gin.Default()
	router.StaticFile("/", a.staticDir+"/index.html")
	router.Static("/static", a.staticDir)

	g := router.Group("/api")
	{
		g.GET("/status", a.handleStatus)
		g.GET("/animations", a.handleAnimations)
		g.GET("/health", a.handleHealth)
		g.POST("/animation", a.handleSwitch)
		g.POST("/pause", a.handlePause)
		g.POST("/resume", a.handleResume)
	}

	return router.Run(a.listen)
}

func (a *Api) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Status: "success",
		Data: StatusData{
			Current:    a.controller.Current(),
			Paused:     a.controller.Paused(),
			Animations: a.controller.Names(),
			Curves:     tween.CurveNames(),
		},
	})
}

func (a *Api) handleAnimations(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Status: "success", Data: a.controller.Names()})
}

func (a *Api) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Status: "success"})
}

func (a *Api) handleSwitch(c *gin.Context) {
	var req SwitchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Status: "error", Error: "invalid animation request: " + err.Error()})
		return
	}
	if err := a.controller.Switch(req.Name); err != nil {
		c.JSON(http.StatusBadRequest, Response{Status: "error", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, Response{Status: "success", Data: req.Name})
}

func (a *Api) handlePause(c *gin.Context) {
	a.controller.Pause()
	c.JSON(http.StatusOK, Response{Status: "success"})
}

func (a *Api) handleResume(c *gin.Context) {
	a.controller.Resume()
	c.JSON(http.StatusOK, Response{Status: "success"})
}
